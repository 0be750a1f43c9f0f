// Package sniff detects the structure of schema-free delimited bank exports:
// the field delimiter, the header row, and which column carries which role.
package sniff

import "strings"

// SplitLines splits raw text on \r\n or \n, discarding blank lines.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// SplitFields splits a line on delim, treating the delimiter as literal while
// inside double quotes. Each field is trimmed of surrounding whitespace and
// one enclosing pair of double quotes. Doubled-quote escaping of embedded
// quote characters is not supported.
func SplitFields(line string, delim rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == delim && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cleanField(cur.String()))
	return fields
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

package sniff

import "strings"

// delimiterCandidates is ordered by priority; ties resolve to the earlier one.
var delimiterCandidates = []rune{';', ',', '\t', '|'}

const (
	// delimiterSampleLines caps how many leading lines are scored.
	delimiterSampleLines = 10
	// semicolonBias compensates for decimal commas inflating the comma count
	// in European exports.
	semicolonBias = 0.5
)

// DetectDelimiter samples up to the first 10 non-empty lines and returns the
// candidate with the highest average per-line occurrence count.
func DetectDelimiter(lines []string) rune {
	sample := lines
	if len(sample) > delimiterSampleLines {
		sample = sample[:delimiterSampleLines]
	}

	best := delimiterCandidates[0]
	bestScore := -1.0
	for _, cand := range delimiterCandidates {
		total := 0
		for _, line := range sample {
			total += strings.Count(line, string(cand))
		}
		score := 0.0
		if len(sample) > 0 {
			score = float64(total) / float64(len(sample))
		}
		if cand == ';' {
			score += semicolonBias
		}
		if score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best
}

package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bankfeed-dev/bankfeed/internal/config"
	"github.com/bankfeed-dev/bankfeed/internal/enrich"
	"github.com/bankfeed-dev/bankfeed/internal/export"
	"github.com/bankfeed-dev/bankfeed/internal/id"
	"github.com/bankfeed-dev/bankfeed/internal/parse"
)

func newParseCommand(logger *log.Logger) *cobra.Command {
	var outPath string
	var rawOnly bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse one statement export and print canonical records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(logger, args[0], outPath, rawOnly)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write CSV to file instead of stdout")
	cmd.Flags().BoolVar(&rawOnly, "raw", false, "emit raw records without enrichment")

	return cmd
}

func runParse(logger *log.Logger, path, outPath string, rawOnly bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	result := parse.Statement(text)
	logger.Debug("parsed statement",
		"file", filepath.Base(path),
		"delimiter", string(result.Delimiter),
		"header_row", result.HeaderRow,
		"records", len(result.Records))

	if len(result.Records) == 0 {
		logger.Warn("no records parsed; the export may not contain a recognizable header row", "file", path)
	}

	emit := func(w io.Writer) error {
		if rawOnly {
			return writeRaw(w, result)
		}
		engine := engineFromWorkspace(logger, filepath.Dir(path))
		records, _ := engine.Apply(result.Records)
		refs := make([]string, len(records))
		for i, rec := range records {
			refs[i] = id.FormatRecordRef(rec.Date, rec.Description, i+1)
		}
		return export.WriteAll(w, records, refs)
	}

	if outPath == "" {
		return emit(os.Stdout)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := emit(f); err != nil {
		f.Close()
		return err
	}
	// A short write can surface at close time; report it instead of
	// pretending the file is complete.
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	return nil
}

func writeRaw(w io.Writer, result parse.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "description", "amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range result.Records {
		row := []string{rec.Date, rec.Description, rec.Amount.StringFixed(2)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// engineFromWorkspace builds the enrichment engine, folding in user rules
// from bankfeed.yaml when one is present in dir or the current directory.
func engineFromWorkspace(logger *log.Logger, dir string) *enrich.Engine {
	for _, candidate := range []string{filepath.Join(dir, config.FileName), config.FileName} {
		cfg, err := config.Load(candidate)
		if err != nil {
			continue
		}
		logger.Debug("loaded workspace config", "path", candidate)
		return enrich.NewEngineWith(cfg.EngineOptions())
	}
	return enrich.NewEngine()
}

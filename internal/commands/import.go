package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bankfeed-dev/bankfeed/internal/config"
	"github.com/bankfeed-dev/bankfeed/internal/enrich"
	"github.com/bankfeed-dev/bankfeed/internal/export"
	"github.com/bankfeed-dev/bankfeed/internal/importer"
)

func newImportCommand(logger *log.Logger) *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Process all exports in the statements directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(logger, workspace)
		},
	}

	cmd.Flags().StringVar(&workspace, "dir", ".", "workspace directory containing bankfeed.yaml")

	return cmd
}

func runImport(logger *log.Logger, workspace string) error {
	cfg, err := config.Load(filepath.Join(workspace, config.FileName))
	if err != nil {
		return fmt.Errorf("loading workspace config: %w", err)
	}

	engine := enrich.NewEngineWith(cfg.EngineOptions())
	statementsDir := filepath.Join(workspace, cfg.Statements.Dir)
	processedDir := filepath.Join(workspace, cfg.Statements.ProcessedDir)

	batch, err := importer.ProcessDir(statementsDir, engine)
	if err != nil {
		return err
	}
	if len(batch.Files) == 0 {
		logger.Info("no statement exports found", "dir", statementsDir)
		return nil
	}

	outPath := filepath.Join(workspace, cfg.Output.Path)
	for _, res := range batch.Files {
		if len(res.Records) == 0 {
			logger.Warn("no records parsed; leaving file in place", "file", res.File.Name)
			continue
		}

		if err := appendRecords(outPath, res); err != nil {
			return err
		}
		if err := importer.MarkProcessed(statementsDir, processedDir, res.File.Name); err != nil {
			return err
		}
		logger.Info("imported statement",
			"batch", batch.ID.String(),
			"file", res.File.Name,
			"records", len(res.Records))
	}
	return nil
}

// appendRecords appends to the canonical CSV, writing the header first when
// the file does not exist yet.
func appendRecords(path string, res importer.FileResult) error {
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if fresh {
		return export.WriteAll(f, res.Records, res.Refs)
	}
	return export.AppendAll(f, res.Records, res.Refs)
}

package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bankfeed-dev/bankfeed/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	logger := log.New(os.Stderr)

	rootCmd := &cobra.Command{
		Use:     "bankfeed",
		Short:   "Normalize and categorize bank statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			logger.SetLevel(log.DebugLevel)
		}
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newParseCommand(logger))
	rootCmd.AddCommand(newImportCommand(logger))

	return rootCmd
}

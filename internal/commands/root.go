package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerdash/ledgerdash/internal/buildinfo"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledgerdash",
		Short:   "Dashboard and reports for GnuCash ledgers",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides log.level")

	rootCmd.AddCommand(
		newServeCommand(opts),
		newSummaryCommand(opts),
		newTreeCommand(opts),
		newTimelineCommand(opts),
		newCheckCommand(opts),
		newExportCommand(opts),
		newConfigCommand(),
	)

	return rootCmd
}

// Package cli wires the pageflip commands: an elided page-bar printer,
// an interactive browser, and config management.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pageflip/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// configCtxKey carries the loaded Config through the command context.
type configCtxKey struct{}

// NewRootCmd creates the root Cobra command for the pageflip CLI.
// It loads configuration and wires up logging before any subcommand runs.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pageflip",
		Short:   "Pagination bookkeeping for ordered collections",
		Long:    "pageflip: page through ordered collections and render compact, elided page bars",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			setupLogging(cmd, cfg)
			cmd.SetContext(context.WithValue(cmd.Context(), configCtxKey{}, cfg))
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("plain", false, "disable styled output")
	cmd.PersistentFlags().
		String("config", "", "config file (default $PAGEFLIP_CONFIG, then ~/.pageflip/config.yaml)")
	cmd.AddCommand(newPagesCmd(), newBrowseCmd(), newConfigCmd())

	return cmd
}

// loadConfig resolves the config file path from the --config flag and
// loads the effective configuration.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.Path()
	}
	return config.Load(path)
}

// configFromContext returns the Config loaded by the root command's
// PersistentPreRunE, or the defaults when a command runs outside it.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configCtxKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

const rootCmdExample = `  # Print an elided page bar for 200 items, 10 per page, on page 7
  pageflip pages --total-items 200 --page 7

  # Tighter bar: only the current page and the collection bounds
  pageflip pages --total-items 200 --page 7 --inner 0 --outer 1

  # Browse the lines of a file interactively
  pageflip browse access.log

  # Browse generated sample rows
  pageflip browse --rows 1000

  # Initialize configuration
  pageflip config init

  # Show the effective configuration
  pageflip config show`

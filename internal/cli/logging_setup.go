package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pageflip/internal/config"
	"github.com/rshade/pageflip/internal/logging"
)

// EnvLogLevel overrides the configured log level when set.
const EnvLogLevel = "PAGEFLIP_LOG_LEVEL"

// setupLogging configures the package logger from config, environment,
// and the --debug flag. Flag beats environment beats file; fields left
// empty by a sparse config section fall back to the logging defaults.
func setupLogging(cmd *cobra.Command, cfg config.Config) {
	logCfg := logging.DefaultConfig()
	logCfg.Output = cmd.ErrOrStderr()
	if cfg.Logging.Level != "" {
		logCfg.Level = cfg.Logging.Level
	}
	if cfg.Logging.Format != "" {
		logCfg.Format = cfg.Logging.Format
	}

	if envLevel := os.Getenv(EnvLogLevel); envLevel != "" {
		logCfg.Level = envLevel
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = logging.FormatConsole
	}

	base := logging.New(logCfg)
	logger = logging.Component(base, "cli").
		With().
		Str("run_id", logging.NewRunID()).
		Logger()

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
}

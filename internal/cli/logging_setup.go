package cli

import (
	"github.com/spf13/cobra"

	"github.com/faultmgr/fmcli/internal/cliutil"
	"github.com/faultmgr/fmcli/internal/config"
)

// setupLogging configures logging from the environment and CLI flags.
// FMCLI_LOG_LEVEL sets the level; --debug overrides it.
func setupLogging(cmd *cobra.Command) {
	level := cliutil.EnvDefault("info", "FMCLI_LOG_LEVEL")
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}

	config.InitLogger(level)
	logger = config.Logger.With().Str("component", "cli").Logger()

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
}

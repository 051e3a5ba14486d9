// Package cli wires the fmcli command tree: the root command, logging
// setup, and the list-rendering commands built on internal/render.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // required for zerolog context integration

// NewRootCmd creates the root Cobra command for the fmcli CLI. It wires up
// logging and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fmcli",
		Short:   "Fault management CLI display client",
		Long:    "fmcli renders lists of fault-management resources (alarms, event logs) as sorted, word-wrapped, terminal-paged tables.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newRenderCmd())

	return cmd
}

const rootCmdExample = `  # Render a resource list, paged to the terminal
  fmcli render alarms.yaml

  # Sort by severity, never wrap the id column
  fmcli render alarms.yaml --sort-by severity --no-wrap-fields alarm_id

  # Dump everything unwrapped with no prompts
  fmcli render alarms.yaml --nowrap --no-paging`

package cli

import "github.com/spf13/cobra"

// AddNoWrapFlag registers the --nowrap option shared by list-style
// commands and binds it to target. Registering it twice on the same
// command is a no-op, so command builders can apply it unconditionally.
func AddNoWrapFlag(cmd *cobra.Command, target *bool) {
	if cmd.Flags().Lookup("nowrap") != nil {
		return
	}
	cmd.Flags().BoolVar(target, "nowrap", false, "no wordwrapping of output")
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [root]",
		Short: "Interactively pick dependencies from the discovered options",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Pick(cmd.Context(), workspaceOptions(cmd, args))
		},
	}
	addWorkspaceFlags(cmd)
	return cmd
}

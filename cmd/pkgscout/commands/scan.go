package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "List the dependency options found under a workspace root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Scan(cmd.Context(), workspaceOptions(cmd, args))
		},
	}
	addWorkspaceFlags(cmd)
	return cmd
}

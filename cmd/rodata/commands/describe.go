package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <resources...>",
		Short: "Print the planned commands of resources without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Describe(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rodata/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build the workspace and rebuild it when sources change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				BuildOptions: app.BuildOptions{Jobs: jobs},
				Debounce:     debounce,
			})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Number of steps run in parallel (default: number of CPUs)")
	cmd.Flags().Duration("debounce", 0, "Quiet period after the last change before rebuilding (default 100ms)")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rodata/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [resources...]",
		Short: "Build the selected resources, or every resource of the workspace",
		Long: "Build embeds the selected resources. A target is a resource path relative to the source root,\n" +
			"a unit name or a step name. Without targets every unit is built.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				NoCache: noCache,
				Jobs:    jobs,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the build cache and force execution")
	cmd.Flags().IntP("jobs", "j", 0, "Number of steps run in parallel (default: number of CPUs)")
	return cmd
}

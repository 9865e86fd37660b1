package commands

import (
	"github.com/spf13/cobra"
	"github.com/zephyr-ci/zephyr/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Rebuild the images whose tracked files changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			images, _ := cmd.Flags().GetStringArray("image")
			python, _ := cmd.Flags().GetString("python")
			force, _ := cmd.Flags().GetBool("force")
			cache, _ := cmd.Flags().GetString("cache")
			answer, _ := cmd.Flags().GetString("answer")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Python: python,
				Images: images,
				Force:  force,
				Cache:  cache,
				Answer: answer,
			})
		},
	}

	cmd.Flags().StringArrayP("image", "i", nil, "Image type to build: base, www or final (repeatable)")
	cmd.Flags().StringP("python", "p", "", "Python version to build (defaults to the configured default)")
	cmd.Flags().BoolP("force", "f", false, "Rebuild regardless of tracked file state")
	cmd.Flags().String("cache", "auto", "Layer cache directive: auto, local, pull or none")
	cmd.Flags().String("answer", "", "Answer every confirmation prompt: yes, no or quit")

	return cmd
}

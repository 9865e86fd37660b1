package commands

import (
	"github.com/spf13/cobra"
	"github.com/zephyr-ci/zephyr/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stored checksums, build markers and built images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checksums, _ := cmd.Flags().GetBool("checksums")
			images, _ := cmd.Flags().GetBool("images")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{
				Checksums: checksums || all,
				Images:    images || all,
			}
			if !opts.Checksums && !opts.Images {
				// Default behavior: drop the stored state only
				opts.Checksums = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().Bool("checksums", false, "Remove the stored checksum records and build markers")
	cmd.Flags().Bool("images", false, "Also remove the locally built images")
	cmd.Flags().BoolP("all", "a", false, "Remove stored state and built images")

	return cmd
}

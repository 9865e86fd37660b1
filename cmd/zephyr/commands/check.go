package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zephyr-ci/zephyr/internal/app"
	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/ui/style"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report which images need rebuilding without building anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			images, _ := cmd.Flags().GetStringArray("image")
			python, _ := cmd.Flags().GetString("python")
			force, _ := cmd.Flags().GetBool("force")
			quiet, _ := cmd.Flags().GetBool("quiet")

			decision, err := c.app.Check(cmd.Context(), app.CheckOptions{
				Python: python,
				Images: images,
				Force:  force,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if quiet {
				for _, img := range decision.NeedingRebuild() {
					fmt.Fprintln(out, img)
				}
				return nil
			}

			for _, img := range decision.Images {
				fmt.Fprintln(out, formatImageStatus(img))
			}

			return nil
		},
	}

	cmd.Flags().StringArrayP("image", "i", nil, "Image type to check: base, www or final (repeatable)")
	cmd.Flags().StringP("python", "p", "", "Python version to check (defaults to the configured default)")
	cmd.Flags().BoolP("force", "f", false, "Treat every image as changed")
	cmd.Flags().BoolP("quiet", "q", false, "Print only the image types needing a rebuild")

	return cmd
}

// formatImageStatus renders one line of check output.
func formatImageStatus(img domain.ImageDecision) string {
	if !img.NeedsRebuild() {
		return fmt.Sprintf("%s %s: up to date", style.Check, img.Image)
	}

	var reason string
	switch {
	case img.Forced:
		reason = "rebuild forced"
	case len(img.ChangedFiles()) > 0:
		reason = "changed: " + strings.Join(img.ChangedFiles(), ", ")
	case img.MarkerMissing:
		reason = "no successful build on record"
	}

	return fmt.Sprintf("%s %s: rebuild needed (%s)", style.Cross, img.Image, reason)
}

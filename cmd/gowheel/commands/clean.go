package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gowheel/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [go-module-dir]",
		Short: "Remove the build cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceDir := "."
			if len(args) == 1 {
				sourceDir = args[0]
			}

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				SourceDir: sourceDir,
			})
		},
	}
}

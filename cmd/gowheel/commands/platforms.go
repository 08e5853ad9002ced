package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/gowheel/internal/core/domain"
)

func (c *CLI) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the supported target platforms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "PLATFORM\tGOOS\tGOARCH\tWHEEL TAG")
			for _, p := range domain.Platforms() {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Key, p.GOOS, p.Arch, p.Tag)
			}
			_ = w.Flush()
		},
	}
}

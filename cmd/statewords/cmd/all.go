package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

func newCmdAll(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every report: concat, neighbors, walks, tours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			r := a.reporter(out)

			steps := []func() error{
				func() error { return a.runConcat(ctx, r) },
				func() error { return a.runNeighbors(ctx, r) },
				func() error { return a.runAnagrams(ctx, r, anagramWalks, a.cfg.Walks) },
				func() error { return a.runAnagrams(ctx, r, anagramTours, a.cfg.Tours) },
			}
			for i, step := range steps {
				if i > 0 && a.cfg.Format == "text" {
					if _, err := io.WriteString(out, "\n"); err != nil {
						return err
					}
				}
				if err := step(); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

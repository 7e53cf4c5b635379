package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newCmdGraph(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Show the loaded adjacency table and any one-way borders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}

			adj := make(map[string][]string, g.Len())
			for _, c := range g.Codes() {
				adj[c] = g.Neighbors(c)
			}
			title := fmt.Sprintf("%d codes, %d directed edges:", g.Len(), g.EdgeCount())
			if err = a.reporter(cmd.OutOrStdout()).Matches(title, adj); err != nil {
				return err
			}

			for _, e := range g.Asymmetric() {
				a.log.Warn("one-way border", slog.String("from", e[0]), slog.String("to", e[1]))
			}

			return nil
		},
	}
}

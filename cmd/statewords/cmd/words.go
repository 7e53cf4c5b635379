package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statewords/report"
)

const (
	titleConcat    = "Words formed by concatenating state codes:"
	titleNeighbors = "Words formed by concatenating neighboring state codes:"
)

func newCmdConcat(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "concat",
		Short: "List words that are concatenations of state codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConcat(cmd.Context(), a.reporter(cmd.OutOrStdout()))
		},
	}
}

func newCmdNeighbors(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "neighbors",
		Aliases: []string{"neighbours"},
		Short:   "List words spelled by a walk across bordering states",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runNeighbors(cmd.Context(), a.reporter(cmd.OutOrStdout()))
		},
	}
}

func (a *app) runConcat(ctx context.Context, r *report.Reporter) error {
	c, v, err := a.classifier(ctx)
	if err != nil {
		return err
	}
	start := time.Now()
	groups := c.CodeWords(v)
	a.log.Debug("classified code concatenations",
		slog.Int("words", groups.Count()),
		slog.Duration("took", time.Since(start)))

	return r.Groups(titleConcat, groups)
}

func (a *app) runNeighbors(ctx context.Context, r *report.Reporter) error {
	c, v, err := a.classifier(ctx)
	if err != nil {
		return err
	}
	start := time.Now()
	groups := c.NeighborWords(v)
	a.log.Debug("classified neighbor walks",
		slog.Int("words", groups.Count()),
		slog.Duration("took", time.Since(start)))

	return r.Groups(titleNeighbors, groups)
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statewords/anagram"
	"github.com/katalvlaran/statewords/config"
	"github.com/katalvlaran/statewords/report"
)

// anagramCmd describes one anagram subcommand.
type anagramCmd struct {
	kind  anagram.Kind
	short string
	long  string
	title string
}

var (
	anagramWalks = anagramCmd{
		kind:  anagram.Walks,
		short: "Anagrams of walks across bordering states",
		long: heredoc.Doc(`
			Match words against every walk of k steps across bordering states
			whose letters are an anagram of the word. By default k sweeps from
			walks.from down to walks.to (7 to 3); --steps picks a single k.
		`),
		title: "Anagrams of concatenated neighboring state codes:",
	}
	anagramTours = anagramCmd{
		kind:  anagram.Tours,
		short: "Anagrams of closed tours across bordering states",
		long: heredoc.Doc(`
			Like walks, but the last state must border the first. Tours that
			differ only by starting point or direction are reported once, in
			canonical form. The default sweep is tours.from down to tours.to
			(6 to 3).
		`),
		title: "Anagrams of tours of neighboring states:",
	}
)

func newCmdAnagrams(a *app, ac anagramCmd) *cobra.Command {
	var steps int
	name := ac.kind.String()

	cmd := &cobra.Command{
		Use:   name,
		Short: ac.short,
		Long:  ac.long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rng := a.sweep(ac.kind)
			if steps != 0 {
				rng = config.Range{From: steps, To: steps}
			}
			return a.runAnagrams(cmd.Context(), a.reporter(cmd.OutOrStdout()), ac, rng)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "k", 0, "run a single step count instead of the sweep")
	cmd.Flags().Int("from", 0, "first step count of the sweep")
	cmd.Flags().Int("to", 0, "last step count of the sweep")
	_ = a.v.BindPFlag(name+".from", cmd.Flags().Lookup("from"))
	_ = a.v.BindPFlag(name+".to", cmd.Flags().Lookup("to"))

	return cmd
}

// sweep returns the configured range for kind.
func (a *app) sweep(kind anagram.Kind) config.Range {
	if kind == anagram.Tours {
		return a.cfg.Tours
	}

	return a.cfg.Walks
}

func (a *app) runAnagrams(ctx context.Context, r *report.Reporter, ac anagramCmd, rng config.Range) error {
	m, err := a.matcher(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	batches, err := m.Sweep(ac.kind, rng.From, rng.To)
	if err != nil {
		return fmt.Errorf("%s: %w", ac.kind, err)
	}
	words := 0
	for _, b := range batches {
		words += len(b.Result)
	}
	a.log.Debug("anagram sweep done",
		slog.String("kind", ac.kind.String()),
		slog.Int("from", rng.From),
		slog.Int("to", rng.To),
		slog.Int("batches", len(batches)),
		slog.Int("words", words),
		slog.Duration("took", time.Since(start)))

	return r.Batches(ac.title, ac.kind, batches)
}

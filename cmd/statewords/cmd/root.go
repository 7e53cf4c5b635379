package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// Execute runs the root command; Ctrl-C cancels a running enumeration.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewCmdRoot().ExecuteContext(ctx)
}

// NewCmdRoot assembles the command tree with a fresh configuration state.
func NewCmdRoot() *cobra.Command {
	a := newApp()

	cmd := &cobra.Command{
		Use:   "statewords",
		Short: "Find words spelled by US state codes",
		Long: heredoc.Doc(`
			Enumerate word puzzles built from two-letter US state codes:

			  concat     words that are concatenations of state codes (GA·GA)
			  neighbors  concatenations of bordering states, in order (MA·NH·ME)
			  walks      anagrams of walks across bordering states
			  tours      anagrams of closed tours across bordering states
			  all        every report above, in that order
			  graph      the loaded adjacency table, one-way borders flagged

			The state map is bundled; the word list defaults to SOWPODS and is
			fetched on first use. Settings come from --config (YAML), then
			STATEWORDS_* environment variables, then flags.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	pf.String("adjacency", "", `adjacency table: "embedded", a URL, or a CSV path`)
	pf.String("vocabulary", "", "word list: a URL or a file path")
	pf.Bool("symmetric", false, "mirror every adjacency edge")
	pf.Int("min-length", 0, "keep only words longer than this")
	pf.Int("max-steps", 0, "refuse step counts above this")
	pf.StringP("format", "o", "", "output format: text, json, yaml")
	pf.String("color", "", "color output: auto, always, never")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	for key, flag := range map[string]string{
		"adjacency":       "adjacency",
		"vocabulary":      "vocabulary",
		"symmetric":       "symmetric",
		"min_word_length": "min-length",
		"max_steps":       "max-steps",
		"format":          "format",
		"color":           "color",
		"log_level":       "log-level",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(
		newCmdConcat(a),
		newCmdNeighbors(a),
		newCmdAnagrams(a, anagramWalks),
		newCmdAnagrams(a, anagramTours),
		newCmdAll(a),
		newCmdGraph(a),
	)

	return cmd
}

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/statewords/anagram"
	"github.com/katalvlaran/statewords/classify"
	"github.com/katalvlaran/statewords/config"
	"github.com/katalvlaran/statewords/core"
	"github.com/katalvlaran/statewords/loader"
	"github.com/katalvlaran/statewords/report"
	"github.com/katalvlaran/statewords/vocab"
	"github.com/katalvlaran/statewords/walk"
)

// app carries the resolved configuration and lazily loaded inputs shared by
// every subcommand. Inputs are loaded at most once per process.
type app struct {
	v       *viper.Viper
	cfgPath string

	cfg config.Config
	log *slog.Logger
	ld  *loader.Loader

	graph *core.Graph
	words *vocab.Vocabulary
}

func newApp() *app {
	return &app{v: config.NewViper()}
}

// setup resolves configuration and logging. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.ld = loader.New(loader.WithLogger(a.log))

	return nil
}

func (a *app) loadGraph(ctx context.Context) (*core.Graph, error) {
	if a.graph != nil {
		return a.graph, nil
	}
	var opts []core.Option
	if a.cfg.Symmetric {
		opts = append(opts, core.WithSymmetric())
	}
	g, err := a.ld.Graph(ctx, a.cfg.Adjacency, opts...)
	if err != nil {
		return nil, err
	}
	a.graph = g

	return g, nil
}

func (a *app) loadWords(ctx context.Context) (*vocab.Vocabulary, error) {
	if a.words != nil {
		return a.words, nil
	}
	v, err := a.ld.Vocabulary(ctx, a.cfg.Vocabulary, vocab.WithMinLength(a.cfg.MinWordLength))
	if err != nil {
		return nil, err
	}
	a.words = v

	return v, nil
}

// classifier loads both inputs and returns a classifier with its vocabulary.
func (a *app) classifier(ctx context.Context) (*classify.Classifier, *vocab.Vocabulary, error) {
	g, err := a.loadGraph(ctx)
	if err != nil {
		return nil, nil, err
	}
	v, err := a.loadWords(ctx)
	if err != nil {
		return nil, nil, err
	}

	return classify.New(g), v, nil
}

// matcher loads both inputs and returns an anagram matcher bound to ctx.
func (a *app) matcher(ctx context.Context) (*anagram.Matcher, error) {
	g, err := a.loadGraph(ctx)
	if err != nil {
		return nil, err
	}
	v, err := a.loadWords(ctx)
	if err != nil {
		return nil, err
	}
	enum := walk.NewEnumerator(g, walk.WithContext(ctx), walk.WithMaxSteps(a.cfg.MaxSteps))

	return anagram.NewMatcher(enum, v), nil
}

// reporter writes to w in the configured format, styling per the color mode.
func (a *app) reporter(w io.Writer) *report.Reporter {
	format, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		format = report.Text
	}

	return report.New(w, report.WithFormat(format), report.WithStyled(a.styled(w)))
}

func (a *app) styled(w io.Writer) bool {
	switch a.cfg.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

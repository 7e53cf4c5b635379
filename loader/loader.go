package loader

import (
	"bufio"
	"bytes"
	"context"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/katalvlaran/statewords/core"
	"github.com/katalvlaran/statewords/vocab"
)

// Embedded names the bundled adjacency table as a source.
const Embedded = "embedded"

// DefaultVocabularyURL is the SOWPODS Scrabble word list.
const DefaultVocabularyURL = "https://norvig.com/ngrams/sowpods.txt"

//go:embed data/state_neighbor.csv
var embedded embed.FS

var (
	// ErrMissingColumn indicates the adjacency header lacks Code or Neighbors.
	ErrMissingColumn = errors.New("loader: missing column")

	// ErrFetch indicates an HTTP source answered with a non-2xx status.
	ErrFetch = errors.New("loader: fetch failed")
)

// missing holds neighbor-field values that mean "no value" in tabular exports.
var missing = map[string]struct{}{
	"nan": {}, "null": {}, "none": {}, "na": {}, "n/a": {}, "-": {},
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(ld *Loader) {
		if c != nil {
			ld.client = c
		}
	}
}

// Loader reads sources and parses them into graphs and vocabularies.
type Loader struct {
	log    *slog.Logger
	client *http.Client
}

// New returns a Loader configured by opts.
func New(opts ...Option) *Loader {
	ld := &Loader{log: slog.Default(), client: http.DefaultClient}
	for _, opt := range opts {
		opt(ld)
	}

	return ld
}

// Open resolves source to a reader. The caller closes it.
func (ld *Loader) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case source == Embedded:
		f, err := embedded.Open("data/state_neighbor.csv")
		if err != nil {
			return nil, fmt.Errorf("loader: embedded: %w", err)
		}
		return f, nil

	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("loader: request %s: %w", source, err)
		}
		ld.log.Debug("fetching source", slog.String("url", source))
		resp, err := ld.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("loader: get %s: %w", source, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %s: %s", ErrFetch, source, resp.Status)
		}
		return resp.Body, nil

	default:
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("loader: open: %w", err)
		}
		return f, nil
	}
}

// Graph opens source and parses it as an adjacency table.
func (ld *Loader) Graph(ctx context.Context, source string, opts ...core.Option) (*core.Graph, error) {
	rc, err := ld.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := ld.ParseAdjacency(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w (source %s)", err, source)
	}
	ld.log.Debug("graph loaded",
		slog.String("source", source),
		slog.Int("codes", g.Len()),
		slog.Int("edges", g.EdgeCount()))
	if asym := g.Asymmetric(); len(asym) > 0 {
		ld.log.Warn("adjacency is not symmetric", slog.Int("one_way_edges", len(asym)))
	}

	return g, nil
}

// Vocabulary opens source and reads it as a word list.
func (ld *Loader) Vocabulary(ctx context.Context, source string, opts ...vocab.Option) (*vocab.Vocabulary, error) {
	rc, err := ld.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	v, err := ReadVocabulary(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w (source %s)", err, source)
	}
	ld.log.Debug("vocabulary loaded", slog.String("source", source), slog.Int("words", v.Len()))

	return v, nil
}

// ParseAdjacency reads an adjacency CSV into a Graph.
func (ld *Loader) ParseAdjacency(r io.Reader, opts ...core.Option) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short rows mean a missing neighbor field
	cr.TrimLeadingSpace = true

	// 1) Locate columns
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("loader: ParseAdjacency: header: %w", err)
	}
	codeCol, nbrCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "code":
			codeCol = i
		case "neighbors", "neighbours":
			nbrCol = i
		}
	}
	if codeCol < 0 || nbrCol < 0 {
		return nil, fmt.Errorf("%w: header %v needs Code and Neighbors", ErrMissingColumn, header)
	}

	// 2) Rows
	b := core.NewBuilder(opts...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: ParseAdjacency: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if codeCol >= len(rec) || strings.TrimSpace(rec[codeCol]) == "" {
			ld.log.Debug("skipping row without code", slog.Int("line", line))
			continue
		}
		code := rec[codeCol]

		field := ""
		if nbrCol < len(rec) {
			field = strings.TrimSpace(rec[nbrCol])
		}
		if _, ok := missing[strings.ToLower(field)]; ok || field == "" {
			ld.log.Debug("skipping row without neighbors", slog.String("code", code), slog.Int("line", line))
			continue
		}

		if err = b.AddNeighbors(code, strings.Split(field, ",")...); err != nil {
			return nil, fmt.Errorf("loader: ParseAdjacency: line %d: %w", line, err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("loader: ParseAdjacency: %w", err)
	}

	return g, nil
}

// ReadVocabulary reads one word per line. Words are lowercased before the
// vocabulary's length filter runs.
func ReadVocabulary(r io.Reader, opts ...vocab.Option) (*vocab.Vocabulary, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var words []string
	for sc.Scan() {
		words = append(words, string(bytes.TrimSpace(sc.Bytes())))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: ReadVocabulary: %w", err)
	}

	return vocab.New(words, append([]vocab.Option{vocab.WithLowercase()}, opts...)...), nil
}

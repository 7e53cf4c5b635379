// Package report renders classifier groups and anagram results for people
// (text) or tools (json, yaml).
//
// Text layout:
//
//	Groups:  lengths longest first, a "N-letter words:" heading, five words per
//	         line, and a blank line between groups.
//	Matches: one line per word, "word: m1,m2,...".
//	Batches: a heading per step count, then the matches of that batch.
//
// Only the grouping and ordering are contractual; styling is cosmetic and is
// dropped entirely when WithStyled(false) is set or the writer is not a
// terminal.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statewords/anagram"
)

// DefaultPerLine is the number of words printed per text line.
const DefaultPerLine = 5

// ErrUnknownFormat is returned by ParseFormat for an unrecognized name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat maps a name to a Format, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithFormat sets the output encoding. Unknown formats fall back to Text.
func WithFormat(f Format) Option {
	return func(r *Reporter) { r.format = f }
}

// WithStyled forces styling on (true) or off (false). Without this option the
// terminal capabilities of the writer decide.
func WithStyled(on bool) Option {
	return func(r *Reporter) { r.styled = &on }
}

// WithPerLine sets how many words share a text line. Values below 1 keep the default.
func WithPerLine(n int) Option {
	return func(r *Reporter) {
		if n >= 1 {
			r.perLine = n
		}
	}
}

// Reporter writes reports to one writer.
type Reporter struct {
	w       io.Writer
	format  Format
	perLine int
	styled  *bool
	docs    int // structured documents written so far

	title   lipgloss.Style
	heading lipgloss.Style
	word    lipgloss.Style
}

// New returns a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{w: w, format: Text, perLine: DefaultPerLine}
	for _, opt := range opts {
		opt(r)
	}
	if _, err := ParseFormat(string(r.format)); err != nil {
		r.format = Text
	}

	re := lipgloss.NewRenderer(w)
	if r.styled != nil {
		if *r.styled {
			re.SetColorProfile(termenv.ANSI256)
		} else {
			re.SetColorProfile(termenv.Ascii)
		}
	}
	r.title = re.NewStyle().Bold(true).Underline(true)
	r.heading = re.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	r.word = re.NewStyle().Foreground(lipgloss.Color("10"))

	return r
}

// group is the structured form of one length bucket.
type group struct {
	Letters int      `json:"letters" yaml:"letters"`
	Words   []string `json:"words"   yaml:"words"`
}

// match is the structured form of one word's matches.
type match struct {
	Word    string   `json:"word"    yaml:"word"`
	Matches []string `json:"matches" yaml:"matches"`
}

// batch is the structured form of one sweep step.
type batch struct {
	Steps   int     `json:"steps"   yaml:"steps"`
	Letters int     `json:"letters" yaml:"letters"`
	Matches []match `json:"matches" yaml:"matches"`
}

// Groups writes length → words, longest first.
func (r *Reporter) Groups(title string, groups map[int][]string) error {
	lengths := make([]int, 0, len(groups))
	for n := range groups {
		lengths = append(lengths, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	if r.format != Text {
		out := make([]group, 0, len(lengths))
		for _, n := range lengths {
			out = append(out, group{Letters: n, Words: groups[n]})
		}
		return r.encode(struct {
			Title  string  `json:"title"  yaml:"title"`
			Groups []group `json:"groups" yaml:"groups"`
		}{title, out})
	}

	var sb strings.Builder
	sb.WriteString(r.title.Render(title))
	sb.WriteString("\n")
	for _, n := range lengths {
		sb.WriteString("\n")
		sb.WriteString(r.heading.Render(fmt.Sprintf("%d-letter words:", n)))
		sb.WriteString("\n")
		ws := groups[n]
		for i := 0; i < len(ws); i += r.perLine {
			end := i + r.perLine
			if end > len(ws) {
				end = len(ws)
			}
			sb.WriteString(strings.Join(ws[i:end], ", "))
			if end < len(ws) {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
	}

	return r.write(sb.String())
}

// Matches writes one line per word, words ascending.
func (r *Reporter) Matches(title string, res map[string][]string) error {
	if r.format != Text {
		return r.encode(struct {
			Title   string  `json:"title"   yaml:"title"`
			Matches []match `json:"matches" yaml:"matches"`
		}{title, toMatches(res)})
	}

	var sb strings.Builder
	sb.WriteString(r.title.Render(title))
	sb.WriteString("\n")
	r.writeMatches(&sb, res, "")

	return r.write(sb.String())
}

// Batches writes a sweep: a heading per step count followed by its matches.
// kind names the index in headings ("walks" or "tours").
func (r *Reporter) Batches(title string, kind anagram.Kind, batches []anagram.Batch) error {
	if r.format != Text {
		out := make([]batch, 0, len(batches))
		for _, b := range batches {
			out = append(out, batch{Steps: b.K, Letters: b.Letters(), Matches: toMatches(b.Result)})
		}
		return r.encode(struct {
			Title   string  `json:"title"   yaml:"title"`
			Kind    string  `json:"kind"    yaml:"kind"`
			Batches []batch `json:"batches" yaml:"batches"`
		}{title, kind.String(), out})
	}

	noun := strings.TrimSuffix(kind.String(), "s")
	var sb strings.Builder
	sb.WriteString(r.title.Render(title))
	sb.WriteString("\n")
	for _, b := range batches {
		sb.WriteString("\n")
		sb.WriteString(r.heading.Render(fmt.Sprintf("%d-letter anagrams of state-code %ss", b.Letters(), noun)))
		sb.WriteString("\n")
		r.writeMatches(&sb, b.Result, "\t")
	}

	return r.write(sb.String())
}

func (r *Reporter) writeMatches(sb *strings.Builder, res map[string][]string, indent string) {
	for _, m := range toMatches(res) {
		sb.WriteString(indent)
		sb.WriteString(r.word.Render(m.Word))
		sb.WriteString(": ")
		sb.WriteString(strings.Join(m.Matches, ","))
		sb.WriteString("\n")
	}
}

func toMatches(res map[string][]string) []match {
	words := make([]string, 0, len(res))
	for w := range res {
		words = append(words, w)
	}
	sort.Strings(words)

	out := make([]match, 0, len(words))
	for _, w := range words {
		out = append(out, match{Word: w, Matches: res[w]})
	}

	return out
}

// encode writes v as one structured document. YAML documents after the first
// are preceded by a "---" separator so repeated calls form a valid stream.
func (r *Reporter) encode(v any) error {
	defer func() { r.docs++ }()
	switch r.format {
	case JSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: json: %w", err)
		}
	case YAML:
		if r.docs > 0 {
			if err := r.write("---\n"); err != nil {
				return err
			}
		}
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}

	return nil
}

func (r *Reporter) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

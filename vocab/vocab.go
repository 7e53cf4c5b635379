// Package vocab holds the ordered, immutable word list that puzzles are drawn from.
//
// A Vocabulary is filtered once at construction: surrounding whitespace is
// trimmed and words of length ≤ MinLength are dropped (the default keeps
// words longer than three letters). Order of the source is preserved, and
// duplicates are kept as they appear.
package vocab

import (
	"sort"
	"strings"
)

// DefaultMinLength is the length a word must exceed to be kept.
const DefaultMinLength = 3

// Option configures a Vocabulary at construction.
type Option func(v *options)

type options struct {
	minLength int
	lowercase bool
}

// WithMinLength keeps only words longer than n. Negative n is treated as 0.
func WithMinLength(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.minLength = n
	}
}

// WithLowercase lowercases every word before filtering.
func WithLowercase() Option {
	return func(o *options) { o.lowercase = true }
}

// Vocabulary is an ordered, length-filtered word list. It is never mutated after New.
type Vocabulary struct {
	words    []string
	byLength map[int][]string
}

// New filters words into a Vocabulary. The input slice is not retained.
func New(words []string, opts ...Option) *Vocabulary {
	o := options{minLength: DefaultMinLength}
	for _, opt := range opts {
		opt(&o)
	}

	v := &Vocabulary{
		words:    make([]string, 0, len(words)),
		byLength: make(map[int][]string),
	}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if o.lowercase {
			w = strings.ToLower(w)
		}
		if len(w) <= o.minLength {
			continue
		}
		v.words = append(v.words, w)
		v.byLength[len(w)] = append(v.byLength[len(w)], w)
	}

	return v
}

// Words returns a copy of all words in source order.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}

// Len returns the number of words kept.
func (v *Vocabulary) Len() int { return len(v.words) }

// OfLength returns a copy of the words of exactly n bytes, in source order.
func (v *Vocabulary) OfLength(n int) []string {
	return append([]string(nil), v.byLength[n]...)
}

// Lengths returns the distinct word lengths present, longest first.
func (v *Vocabulary) Lengths() []int {
	out := make([]int, 0, len(v.byLength))
	for n := range v.byLength {
		out = append(out, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}

// Each calls fn for every word in source order and stops when fn returns false.
func (v *Vocabulary) Each(fn func(w string) bool) {
	for _, w := range v.words {
		if !fn(w) {
			return
		}
	}
}

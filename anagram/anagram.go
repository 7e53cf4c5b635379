// Package anagram joins vocabulary words against walk and tour indexes on
// their LetterKey: a word matches every walk (or tour) spelled with the same
// multiset of characters.
//
// The join is purely on LetterKey equality. A matching walk need not share any
// other structure with the word, and a word with no match is absent from the
// Result rather than recorded with an empty set.
package anagram

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/statewords/core"
	"github.com/katalvlaran/statewords/walk"
)

// ErrUnknownKind is returned by Sweep for a Kind other than Walks or Tours.
var ErrUnknownKind = errors.New("anagram: unknown kind")

// Kind selects which index a sweep is matched against.
type Kind int

const (
	// Walks matches open walks.
	Walks Kind = iota
	// Tours matches canonical closed tours.
	Tours
)

// String returns "walks" or "tours".
func (k Kind) String() string {
	switch k {
	case Walks:
		return "walks"
	case Tours:
		return "tours"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Indexer builds walk and tour indexes. *walk.Enumerator satisfies it.
type Indexer interface {
	Walks(k int) (walk.Index, error)
	Cycles(k int) (walk.Index, error)
}

// Words supplies the vocabulary words of one length. *vocab.Vocabulary satisfies it.
type Words interface {
	OfLength(n int) []string
}

// Result maps a word to its matching walk or tour strings, sorted and unique.
type Result map[string][]string

// Words returns the matched words in ascending order.
func (r Result) Words() []string {
	out := make([]string, 0, len(r))
	for w := range r {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Batch is one step count of a sweep.
type Batch struct {
	K      int
	Result Result
}

// Letters returns the word length the batch covers.
func (b Batch) Letters() int { return b.K * core.CodeLen }

// Matcher cross-references a vocabulary with an indexer.
type Matcher struct {
	ix    Indexer
	words Words
}

// NewMatcher returns a Matcher over ix and words.
func NewMatcher(ix Indexer, words Words) *Matcher {
	return &Matcher{ix: ix, words: words}
}

// WalkAnagrams matches the 2k-letter words against all k-step walks.
func (m *Matcher) WalkAnagrams(k int) (Result, error) {
	ix, err := m.ix.Walks(k)
	if err != nil {
		return nil, fmt.Errorf("anagram: WalkAnagrams: %w", err)
	}

	return Match(ix, m.words.OfLength(k*core.CodeLen)), nil
}

// TourAnagrams matches the 2k-letter words against all k-step tours.
func (m *Matcher) TourAnagrams(k int) (Result, error) {
	ix, err := m.ix.Cycles(k)
	if err != nil {
		return nil, fmt.Errorf("anagram: TourAnagrams: %w", err)
	}

	return Match(ix, m.words.OfLength(k*core.CodeLen)), nil
}

// Sweep runs kind for every k from `from` down to `to` inclusive (or upward when
// from < to) and keeps only non-empty results, in sweep order.
func (m *Matcher) Sweep(kind Kind, from, to int) ([]Batch, error) {
	var run func(int) (Result, error)
	switch kind {
	case Walks:
		run = m.WalkAnagrams
	case Tours:
		run = m.TourAnagrams
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	step := -1
	if from < to {
		step = 1
	}
	var out []Batch
	for k := from; ; k += step {
		res, err := run(k)
		if err != nil {
			return nil, err
		}
		if len(res) > 0 {
			out = append(out, Batch{K: k, Result: res})
		}
		if k == to {
			break
		}
	}

	return out, nil
}

// Match joins words against ix on LetterKey. Words whose key is absent are omitted.
// Repeated words in the input merge into one entry.
func Match(ix walk.Index, words []string) Result {
	out := make(Result)
	for _, w := range words {
		bucket := ix.Lookup(walk.LetterKey(w))
		if len(bucket) == 0 {
			continue
		}
		out[w] = union(out[w], bucket)
	}

	return out
}

// union merges two sorted, duplicate-free slices into a new one.
func union(a, b []string) []string {
	if len(a) == 0 {
		return append([]string(nil), b...)
	}
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

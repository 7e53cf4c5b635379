package classify

import (
	"sort"

	"github.com/katalvlaran/statewords/core"
	"github.com/katalvlaran/statewords/vocab"
)

// Graph is the adjacency view a Classifier needs. *core.Graph satisfies it.
type Graph interface {
	IsCode(c string) bool
	HasNeighbor(a, b string) bool
}

// Groups maps a word length to the matching words in vocabulary order.
type Groups map[int][]string

// Lengths returns the lengths present, longest first.
func (gr Groups) Lengths() []int {
	out := make([]int, 0, len(gr))
	for n := range gr {
		out = append(out, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}

// Count returns the total number of words across all lengths.
func (gr Groups) Count() int {
	n := 0
	for _, ws := range gr {
		n += len(ws)
	}

	return n
}

// Classifier answers code-spelling predicates against one graph.
type Classifier struct {
	g Graph
}

// New returns a Classifier over g.
func New(g Graph) *Classifier {
	return &Classifier{g: g}
}

// IsCodeConcatenation reports whether every two-letter chunk of word is a known code.
func (c *Classifier) IsCodeConcatenation(word string) bool {
	chunks, err := core.Split(word)
	if err != nil || len(chunks) == 0 {
		return false
	}
	for _, ch := range chunks {
		if !c.g.IsCode(ch) {
			return false
		}
	}

	return true
}

// IsNeighborWalk reports whether word's chunks form a walk: the first chunk is a
// known code and each chunk is a neighbor of the previous one.
func (c *Classifier) IsNeighborWalk(word string) bool {
	chunks, err := core.Split(word)
	if err != nil || len(chunks) == 0 {
		return false
	}
	if !c.g.IsCode(chunks[0]) {
		return false
	}
	for i := 1; i < len(chunks); i++ {
		if !c.g.HasNeighbor(chunks[i-1], chunks[i]) {
			return false
		}
	}

	return true
}

// CodeWords groups the even-length words of v that are code concatenations.
func (c *Classifier) CodeWords(v *vocab.Vocabulary) Groups {
	return c.group(v, c.IsCodeConcatenation)
}

// NeighborWords groups the even-length words of v that are neighbor walks.
func (c *Classifier) NeighborWords(v *vocab.Vocabulary) Groups {
	return c.group(v, c.IsNeighborWalk)
}

func (c *Classifier) group(v *vocab.Vocabulary, pred func(string) bool) Groups {
	out := make(Groups)
	v.Each(func(w string) bool {
		if len(w)%core.CodeLen == 0 && pred(w) {
			out[len(w)] = append(out[len(w)], w)
		}
		return true
	})

	return out
}

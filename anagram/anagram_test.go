package anagram_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statewords/anagram"
	"github.com/katalvlaran/statewords/core"
	"github.com/katalvlaran/statewords/vocab"
	"github.com/katalvlaran/statewords/walk"
)

func lineGraph(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddNeighbors("aa", "bb"))
	require.NoError(t, b.AddNeighbors("bb", "aa", "cc"))
	require.NoError(t, b.AddNeighbors("cc", "bb"))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// TestMatch_Scenario covers the aabb/xxxx vocabulary against the line graph.
func TestMatch_Scenario(t *testing.T) {
	ix, err := walk.NewEnumerator(lineGraph(t)).Walks(2)
	require.NoError(t, err)

	res := anagram.Match(ix, []string{"aabb", "xxxx"})
	assert.Equal(t, anagram.Result{"aabb": {"aabb", "bbaa"}}, res)
	_, ok := res["xxxx"]
	assert.False(t, ok, "unmatched words are absent")
}

// TestMatch_KeyIsCharacterLevel matches words that are not code-aligned anagrams.
func TestMatch_KeyIsCharacterLevel(t *testing.T) {
	ix, err := walk.NewEnumerator(lineGraph(t)).Walks(2)
	require.NoError(t, err)

	res := anagram.Match(ix, []string{"abab", "baba", "cbcb"})
	assert.Equal(t, []string{"aabb", "bbaa"}, res["abab"])
	assert.Equal(t, []string{"aabb", "bbaa"}, res["baba"])
	assert.Equal(t, []string{"bbcc", "ccbb"}, res["cbcb"])
}

// TestMatch_NoEmptyEntries holds for any input.
func TestMatch_NoEmptyEntries(t *testing.T) {
	ix, err := walk.NewEnumerator(lineGraph(t)).Walks(2)
	require.NoError(t, err)

	res := anagram.Match(ix, []string{"aabb", "zzzz", "", "aabb", "abcc", "bcbc"})
	for w, ms := range res {
		assert.NotEmpty(t, ms, w)
	}
	assert.Equal(t, []string{"aabb", "bcbc"}, res.Words())
}

func TestMatcher_WalkAndTourAnagrams(t *testing.T) {
	g := lineGraph(t)
	v := vocab.New([]string{"abba", "baba", "cbcb", "acac", "aabbcc"}, vocab.WithMinLength(3))
	m := anagram.NewMatcher(walk.NewEnumerator(g), v)

	walks, err := m.WalkAnagrams(2)
	require.NoError(t, err)
	assert.Equal(t, anagram.Result{
		"abba": {"aabb", "bbaa"},
		"baba": {"aabb", "bbaa"},
		"cbcb": {"bbcc", "ccbb"},
	}, walks)

	tours, err := m.TourAnagrams(2)
	require.NoError(t, err)
	assert.Equal(t, anagram.Result{
		"abba": {"aabb"},
		"baba": {"aabb"},
		"cbcb": {"bbcc"},
	}, tours)

	// aabbcc needs a 3-step walk using each code once: aa→bb→cc
	walks3, err := m.WalkAnagrams(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"aabbcc", "ccbbaa"}, walks3["aabbcc"])
}

func TestMatcher_InvalidSteps(t *testing.T) {
	m := anagram.NewMatcher(walk.NewEnumerator(lineGraph(t)), vocab.New(nil))
	_, err := m.WalkAnagrams(0)
	assert.ErrorIs(t, err, walk.ErrInvalidSteps)
	_, err = m.TourAnagrams(-2)
	assert.ErrorIs(t, err, walk.ErrInvalidSteps)
}

func TestMatcher_Sweep(t *testing.T) {
	v := vocab.New([]string{"abba", "aabbcc", "bbaabbcc"})
	m := anagram.NewMatcher(walk.NewEnumerator(lineGraph(t)), v)

	batches, err := m.Sweep(anagram.Walks, 4, 2)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, []int{4, 3, 2}, []int{batches[0].K, batches[1].K, batches[2].K})
	assert.Equal(t, 8, batches[0].Letters())
	assert.Contains(t, batches[0].Result["bbaabbcc"], "bbaabbcc")

	up, err := m.Sweep(anagram.Tours, 2, 3)
	require.NoError(t, err)
	require.Len(t, up, 1, "no 3-step tour exists on a line without loops")
	assert.Equal(t, 2, up[0].K)

	_, err = m.Sweep(anagram.Kind(9), 3, 2)
	assert.ErrorIs(t, err, anagram.ErrUnknownKind)
}

// failingIndexer surfaces an enumeration error through Sweep.
type failingIndexer struct{ err error }

func (f failingIndexer) Walks(int) (walk.Index, error)  { return nil, f.err }
func (f failingIndexer) Cycles(int) (walk.Index, error) { return nil, f.err }

func TestMatcher_SweepPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	m := anagram.NewMatcher(failingIndexer{err: boom}, vocab.New(nil))
	_, err := m.Sweep(anagram.Tours, 3, 3)
	assert.ErrorIs(t, err, boom)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "walks", anagram.Walks.String())
	assert.Equal(t, "tours", anagram.Tours.String())
	assert.Equal(t, "Kind(7)", anagram.Kind(7).String())
}

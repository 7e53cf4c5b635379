package walk_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statewords/core"
	"github.com/katalvlaran/statewords/walk"
)

// rotate moves the first n codes of w to the end.
func rotate(w string, n int) string {
	n = (n * 2) % len(w)
	return w[n:] + w[:n]
}

// reverseCodes reverses w at code granularity.
func reverseCodes(w string) string {
	codes, _ := core.Split(w)
	out := ""
	for i := len(codes) - 1; i >= 0; i-- {
		out += codes[i]
	}

	return out
}

// minStartRule is the textbook form: rotate so the smallest code leads, then
// compare against the reversed sequence that also starts there.
func minStartRule(w string) string {
	p, _ := core.Split(w)
	i := 0
	for j := range p {
		if p[j] < p[i] {
			i = j
		}
	}
	fwd := ""
	for _, c := range append(append([]string{}, p[i:]...), p[:i]...) {
		fwd += c
	}
	bwd := ""
	for j := i; j >= 0; j-- {
		bwd += p[j]
	}
	for j := len(p) - 1; j > i; j-- {
		bwd += p[j]
	}
	if bwd < fwd {
		return bwd
	}

	return fwd
}

// randomTour draws n distinct codes.
func randomTour(r *rand.Rand, n int) string {
	seen := map[string]bool{}
	out := ""
	for len(seen) < n {
		c := string([]byte{byte('a' + r.Intn(26)), byte('a' + r.Intn(26))})
		if seen[c] {
			continue
		}
		seen[c] = true
		out += c
	}

	return out
}

func TestCanon_Examples(t *testing.T) {
	cases := map[string]string{
		"":       "",
		"aa":     "aa",
		"bbaa":   "aabb",
		"aabb":   "aabb",
		"ctrima": "ctmari",
		"marict": "ctmari",
		"nhmevt": "menhvt",
	}

	for in, want := range cases {
		got, err := walk.Canon(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestCanon_OddLength(t *testing.T) {
	_, err := walk.Canon("abc")
	assert.ErrorIs(t, err, core.ErrOddLength)
}

// TestCanon_Invariance covers idempotence and rotation/reflection invariance.
func TestCanon_Invariance(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.Intn(7)
		w := randomTour(r, n)
		c, err := walk.Canon(w)
		require.NoError(t, err)

		again, err := walk.Canon(c)
		require.NoError(t, err)
		assert.Equal(t, c, again, "idempotent")

		for off := 0; off < n; off++ {
			rc, err := walk.Canon(rotate(w, off))
			require.NoError(t, err)
			assert.Equal(t, c, rc, "rotation %d of %s", off, w)
		}
		rev, err := walk.Canon(reverseCodes(w))
		require.NoError(t, err)
		assert.Equal(t, c, rev, "reflection of %s", w)

		assert.Equal(t, minStartRule(w), c, "min-start rule for %s", w)
	}
}

// TestCanon_RepeatedCodes stays invariant when the smallest code occurs twice.
func TestCanon_RepeatedCodes(t *testing.T) {
	w := "aabbaacc"
	c, err := walk.Canon(w)
	require.NoError(t, err)
	assert.Equal(t, "aabbaacc", c)
	for off := 0; off < 4; off++ {
		rc, err := walk.Canon(rotate(w, off))
		require.NoError(t, err)
		assert.Equal(t, c, rc)
	}
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{}, walk.MinimalRotation(nil))
	assert.Equal(t, []string{"a", "b", "c"}, walk.MinimalRotation([]string{"b", "c", "a"}))
	assert.Equal(t, []string{"a", "a", "b"}, walk.MinimalRotation([]string{"a", "b", "a"}))

	in := []string{"c", "a", "b"}
	_ = walk.MinimalRotation(in)
	assert.Equal(t, []string{"c", "a", "b"}, in, "input untouched")
}

func TestCompareAndReverse(t *testing.T) {
	assert.Equal(t, -1, walk.Compare([]string{"aa", "bb"}, []string{"aa", "cc"}))
	assert.Equal(t, 1, walk.Compare([]string{"bb"}, []string{"aa"}))
	assert.Equal(t, 0, walk.Compare([]string{"aa"}, []string{"aa"}))
	assert.Equal(t, []string{"c", "b", "a"}, walk.Reverse([]string{"a", "b", "c"}))
}

func TestLetterKey(t *testing.T) {
	assert.Equal(t, "aabb", walk.LetterKey("bbaa"))
	assert.Equal(t, "aabb", walk.LetterKey("abab"))
	assert.Equal(t, "", walk.LetterKey(""))

	// keys work on characters, not codes: "abba" and "aabb" collide
	assert.Equal(t, walk.LetterKey("aabb"), walk.LetterKey("abba"))
	assert.Equal(t, "ehmntv", walk.LetterKey("vtnhme"))
}

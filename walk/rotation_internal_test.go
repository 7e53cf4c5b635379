package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunks(t *testing.T) {
	assert.Equal(t, []string{"ma", "nh", "vt"}, chunks("manhvt"))
	assert.Empty(t, chunks(""))
	assert.Equal(t, []string{"ma"}, chunks("man"), "a partial trailing code is dropped")
}

func TestCanonical_MatchesCanonOnTraversalStrings(t *testing.T) {
	for _, w := range []string{"nhvtma", "vtnhma", "aabbaacc", "ccaabbaa"} {
		want, err := Canon(w)
		assert.NoError(t, err)
		assert.Equal(t, want, join(canonical(chunks(w))), w)
	}
}

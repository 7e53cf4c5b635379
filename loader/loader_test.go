package loader_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statewords/core"
	"github.com/katalvlaran/statewords/loader"
	"github.com/katalvlaran/statewords/vocab"
)

func quiet() *loader.Loader {
	return loader.New(loader.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestParseAdjacency_Basic(t *testing.T) {
	csv := "State,Code,Neighbors\n" +
		"Maine,ME,NH\n" +
		"New Hampshire,NH,\"ME,MA,VT\"\n" +
		"Alaska,AK,\n" +
		"Hawaii,HI,NaN\n" +
		"Short,RI\n"
	g, err := quiet().ParseAdjacency(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{"ma", "me", "nh", "vt"}, g.Codes())
	assert.Equal(t, []string{"me", "ma", "vt"}, g.Neighbors("nh"))
	for _, c := range []string{"ak", "hi", "ri"} {
		assert.False(t, g.IsCode(c), c)
	}
}

// TestParseAdjacency_RowWithoutNeighborsIsSkipped keeps island rows out of the code set.
func TestParseAdjacency_RowWithoutNeighborsIsSkipped(t *testing.T) {
	g, err := quiet().ParseAdjacency(strings.NewReader("Code,Neighbors\nak,\nwa,\"or,id\"\n"))
	require.NoError(t, err)
	assert.False(t, g.IsCode("ak"))
	assert.Equal(t, []string{"id", "or", "wa"}, g.Codes())

	_, err = quiet().ParseAdjacency(strings.NewReader("Code,Neighbors\nak,\nhi,NaN\n"))
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestParseAdjacency_ColumnOrderAndCase(t *testing.T) {
	csv := "neighbors,code\n\"ny\",vt\n"
	g, err := quiet().ParseAdjacency(strings.NewReader(csv))
	require.NoError(t, err)
	assert.True(t, g.HasNeighbor("vt", "ny"))
	assert.False(t, g.HasNeighbor("ny", "vt"))
}

func TestParseAdjacency_Symmetric(t *testing.T) {
	csv := "Code,Neighbors\nny,vt\n"
	g, err := quiet().ParseAdjacency(strings.NewReader(csv), core.WithSymmetric())
	require.NoError(t, err)
	assert.True(t, g.HasNeighbor("vt", "ny"))
}

func TestParseAdjacency_Errors(t *testing.T) {
	_, err := quiet().ParseAdjacency(strings.NewReader("State,Abbrev\nMaine,ME\n"))
	assert.ErrorIs(t, err, loader.ErrMissingColumn)

	_, err = quiet().ParseAdjacency(strings.NewReader("Code,Neighbors\nMEE,NH\n"))
	assert.ErrorIs(t, err, core.ErrInvalidCode)
	assert.Contains(t, err.Error(), "line 2")

	_, err = quiet().ParseAdjacency(strings.NewReader("Code,Neighbors\n"))
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = quiet().ParseAdjacency(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseAdjacency_SkipsRowsWithoutCode(t *testing.T) {
	g, err := quiet().ParseAdjacency(strings.NewReader("Code,Neighbors\n,\"ME\"\nNH,ME\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"me", "nh"}, g.Codes())
}

// TestEmbedded checks the bundled table: 48 contiguous states, symmetric, no island states.
func TestEmbedded(t *testing.T) {
	g, err := quiet().Graph(context.Background(), loader.Embedded)
	require.NoError(t, err)

	assert.Equal(t, 48, g.Len())
	assert.Empty(t, g.Asymmetric())
	assert.False(t, g.IsCode("ak"))
	assert.False(t, g.IsCode("hi"))
	assert.Equal(t, []string{"nh"}, g.Neighbors("me"))
	assert.Equal(t, 8, g.Degree("tn"))
	assert.Equal(t, 8, g.Degree("mo"))
	assert.True(t, g.HasNeighbor("ut", "nm"), "four corners")
}

func TestReadVocabulary(t *testing.T) {
	v, err := loader.ReadVocabulary(strings.NewReader("AA\r\nmaine\n\n  Ohio \nabc\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"maine", "ohio"}, v.Words())

	v, err = loader.ReadVocabulary(strings.NewReader("ab\nabc\n"), vocab.WithMinLength(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "abc"}, v.Words())
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("gaga\nmama\n"), 0o600))

	v, err := quiet().Vocabulary(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"gaga", "mama"}, v.Words())

	_, err = quiet().Vocabulary(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "Code,Neighbors\nAA,BB\nBB,AA\n")
	}))
	defer srv.Close()

	ld := loader.New(
		loader.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		loader.WithHTTPClient(srv.Client()),
	)
	g, err := ld.Graph(context.Background(), srv.URL+"/adjacency.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "bb"}, g.Codes())

	_, err = ld.Graph(context.Background(), srv.URL+"/missing")
	assert.ErrorIs(t, err, loader.ErrFetch)
}

func TestOpen_HTTPCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "gaga\n")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := quiet().Vocabulary(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

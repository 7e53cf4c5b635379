// File: types.go
// Role: Code helpers, Builder options, the Graph type and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// CodeLen is the number of characters in every state code.
const CodeLen = 2

// Sentinel errors for graph construction.
var (
	// ErrInvalidCode indicates a token that is not exactly two ASCII letters.
	ErrInvalidCode = errors.New("core: invalid code")

	// ErrEmptyGraph indicates Build was called before any code was added.
	ErrEmptyGraph = errors.New("core: graph has no codes")

	// ErrOddLength indicates a string that cannot be split into whole codes.
	ErrOddLength = errors.New("core: odd length")
)

// NormalizeCode trims surrounding whitespace and lowercases s.
// It does not validate; pair it with ValidCode.
func NormalizeCode(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidCode reports whether c is exactly two lowercase ASCII letters.
func ValidCode(c string) bool {
	if len(c) != CodeLen {
		return false
	}
	for i := 0; i < CodeLen; i++ {
		if c[i] < 'a' || c[i] > 'z' {
			return false
		}
	}

	return true
}

// Split cuts s into consecutive CodeLen-byte chunks, left to right.
// Odd-length input fails fast with ErrOddLength instead of truncating.
// The empty string yields an empty slice.
func Split(s string) ([]string, error) {
	if len(s)%CodeLen != 0 {
		return nil, fmt.Errorf("%w: %q", ErrOddLength, s)
	}
	out := make([]string, 0, len(s)/CodeLen)
	for i := 0; i < len(s); i += CodeLen {
		out = append(out, s[i:i+CodeLen])
	}

	return out, nil
}

// Option configures a Builder before codes are added.
type Option func(b *Builder)

// WithSymmetric mirrors every edge a→b with b→a at Build time.
func WithSymmetric() Option {
	return func(b *Builder) { b.symmetric = true }
}

// WithoutLoops drops self-loops (a code listed as its own neighbor).
func WithoutLoops() Option {
	return func(b *Builder) { b.dropLoops = true }
}

// Graph is the immutable adjacency relation between codes.
//
// order keeps each code's neighbors in first-seen order for traversal;
// adj answers membership in O(1). Both are written only by Builder.Build.
type Graph struct {
	codes []string                       // sorted code list
	order map[string][]string            // code → neighbors, first-seen order
	adj   map[string]map[string]struct{} // code → neighbor set
	edges int                            // number of directed edges
}

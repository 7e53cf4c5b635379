// File: rotation.go
// Role: Helpers over code sequences: LetterKey, chunking, reversal, comparison,
// and Booth's minimal-rotation algorithm.

package walk

import (
	"sort"
	"strings"

	"github.com/katalvlaran/statewords/core"
)

// LetterKey returns the characters of s sorted ascending, joined back into a string.
func LetterKey(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	return string(b)
}

// chunks cuts a traversal string into its codes. Traversal only ever appends
// whole codes, so the length is always a multiple of core.CodeLen; a trailing
// partial code would be dropped.
func chunks(w string) []string {
	out := make([]string, 0, len(w)/core.CodeLen) // one slot per code
	for i := 0; i+core.CodeLen <= len(w); i += core.CodeLen {
		out = append(out, w[i:i+core.CodeLen]) // next whole code
	}

	return out
}

// Reverse returns the codes of s back to front, as a new slice.
// Time Complexity: O(n).
func Reverse(s []string) []string {
	out := make([]string, len(s)) // same length, fresh backing array
	for i := range s {
		out[i] = s[len(s)-1-i] // mirror index
	}

	return out
}

// Compare orders two code sequences of equal length element by element,
// returning -1, 0 or +1.
// Time Complexity: O(n).
func Compare(a, b []string) int {
	for i := range a { // callers guarantee len(a) == len(b)
		if a[i] < b[i] {
			return -1 // a sorts first at the first difference
		} else if a[i] > b[i] {
			return 1 // b sorts first at the first difference
		}
	}

	return 0 // identical sequences
}

// MinimalRotation returns the lexicographically smallest rotation of s using
// Booth's algorithm. The input is not modified; the empty sequence yields an
// empty slice.
// Time Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return []string{}
	}

	// 1) Doubled sequence in a fresh backing array so s is never written through
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)

	// 2) Failure links, all unset
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}

	// 3) Scan, moving the candidate start k whenever a smaller rotation shows up
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1] // longest border so far
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1 // smaller rotation starts earlier
			}
			i = f[i] // fall back along the failure chain
		}
		if doubled[j] != doubled[k+i+1] { // i == -1 here
			if doubled[j] < doubled[k] {
				k = j // new smallest first element
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1 // border grows by one
		}
	}

	// 4) Extract n codes starting at k
	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}

// join concatenates codes with no separator.
func join(codes []string) string {
	return strings.Join(codes, "")
}

package walk

import (
	"fmt"

	"github.com/katalvlaran/statewords/core"
)

// Canon returns the canonical form of a closed tour given as concatenated codes.
//
// Two tours are the same when one is a rotation or a reflection of the other
// (at code granularity). The canonical form is the smaller of the minimal
// rotation of the sequence and the minimal rotation of its reversal. When the
// smallest code occurs once, this is exactly "rotate to start at the smallest
// code, then compare against the reversed sequence starting there". When it
// repeats (longer tours that revisit a state), every rotation still maps to
// one form, so such a tour is listed once rather than once per occurrence of
// its smallest code.
//
// Returns core.ErrOddLength when cycle does not split into whole codes.
func Canon(cycle string) (string, error) {
	codes, err := core.Split(cycle)
	if err != nil {
		return "", fmt.Errorf("walk: Canon: %w", err)
	}

	return join(canonical(codes)), nil
}

// canonical picks the smaller of the minimal forward and minimal backward rotation.
func canonical(codes []string) []string {
	rotF := MinimalRotation(codes)
	rotB := MinimalRotation(Reverse(codes))
	if Compare(rotB, rotF) < 0 {
		return rotB
	}

	return rotF
}

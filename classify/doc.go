// Package classify decides whether a word is spelled by state codes.
//
// Two independent predicates run over a word split into two-letter chunks:
//
//   - IsCodeConcatenation: every chunk is a known code ("gaga" = ga·ga).
//   - IsNeighborWalk: the first chunk is a known code and every next chunk is
//     listed as a neighbor of the one before it ("mamd" = ma→md only if md is a
//     neighbor of ma). The check is directed and never symmetrized.
//
// Every neighbor walk is a code concatenation, because the graph registers
// neighbor-only codes as codes.
//
// Both predicates are false for odd-length and empty words; use core.Split
// directly for a fail-fast ErrOddLength.
//
// The bulk operations CodeWords and NeighborWords partition a vocabulary by
// word length, preserving vocabulary order inside each bucket.
package classify

// Package walk enumerates walks and closed tours over a core.Graph and buckets
// them by LetterKey for anagram matching.
//
// What:
//
//   - Walks(k): every sequence of k codes in which each code is a neighbor of the
//     one before it, started independently from every code in the graph.
//   - Cycles(k): the same traversal, keeping only walks whose first code is also a
//     neighbor of the last; each survivor is reduced to its canonical tour.
//   - Canon: the representative of a tour, i.e. the lexicographically smallest
//     string among all rotations of the code sequence and of its reversal.
//   - LetterKey: the sorted characters of a string, used as a bucketing key. It
//     works on raw characters, not on codes.
//
// How:
//
//	Traversal is a depth-first search over an explicit stack of partial walk
//	strings, never recursion. Each branch grows by one code per step up to the
//	fixed target length 2k, so it always terminates. Codes without neighbors end
//	every branch through them; self-loops and revisits are allowed.
//
// Complexity:
//
//   - Time:   O(V · b^(k-1) · k), b = max out-degree
//   - Memory: O(result size + b·k) for the stack
//
// The state space grows as b^k, so k must stay small: the statewords CLI caps
// walks at 7 steps and tours at 6, and WithMaxSteps guards the library.
//
// Errors:
//
//   - ErrInvalidSteps    k < 1
//   - ErrStepsTooLarge   k above the configured maximum
//   - core.ErrOddLength  Canon given an odd-length string
//   - context errors     when WithContext is cancelled mid-enumeration
package walk

// Package core provides the immutable adjacency graph over two-letter state codes
// that every other statewords package walks.
//
// The Graph G = (V,E) is a directed relation: an edge a→b means "b is listed as a
// neighbor of a". Source data for state borders is symmetric in principle, but
// nothing here assumes it is; use WithSymmetric to mirror edges explicitly.
//
// Graphs are assembled through a Builder, which is the only parse-and-validate
// step:
//
//   - Codes are normalized to lowercase and must be exactly two ASCII letters
//     (ErrInvalidCode otherwise).
//   - A code referenced only as a neighbor is registered as a node with no
//     outgoing neighbors, so every code reachable in a walk is a known code.
//   - Duplicate neighbors collapse; the order of first appearance is kept and
//     drives traversal order.
//   - Self-loops are legal unless WithoutLoops is given.
//
// Once built, a Graph is never mutated and is safe for concurrent readers
// without locking.
//
// Core Methods:
//
//	IsCode(c string) bool             // O(1)
//	Neighbors(c string) []string      // O(d), empty for unknown codes, never an error
//	HasNeighbor(a, b string) bool     // O(1), directed
//	Codes() []string                  // O(V), sorted
//	Len() int, EdgeCount() int        // O(1)
//	Asymmetric() [][2]string          // O(E), a→b without b→a, sorted
//
// Errors:
//
//	ErrInvalidCode – token is not two ASCII letters
//	ErrEmptyGraph  – Build called with no codes
//	ErrOddLength   – Split given a string of odd length
package core

// File: graph.go
// Role: Read-only queries on a built Graph.
// Determinism:
//   - Codes() and Asymmetric() are sorted; Neighbors() follows first-seen order.
// Concurrency:
//   - No locks: a Graph is immutable after Build.

package core

import "sort"

// IsCode reports whether c is a known code. c is matched as given, without normalization.
func (g *Graph) IsCode(c string) bool {
	_, ok := g.adj[c]
	return ok
}

// Neighbors returns the codes listed as neighbors of c in first-seen order.
// Unknown codes yield an empty slice, not an error; check IsCode where validity matters.
// The returned slice is a copy.
func (g *Graph) Neighbors(c string) []string {
	ns := g.order[c]
	if len(ns) == 0 {
		return []string{}
	}

	return append([]string(nil), ns...)
}

// neighborsView returns the internal neighbor slice without copying.
// Callers in this package must not modify it.
func (g *Graph) neighborsView(c string) []string {
	return g.order[c]
}

// Each calls fn for every neighbor of c in traversal order without allocating.
// It stops early when fn returns false.
func (g *Graph) Each(c string, fn func(n string) bool) {
	for _, n := range g.neighborsView(c) {
		if !fn(n) {
			return
		}
	}
}

// HasNeighbor reports whether b is listed as a neighbor of a. The check is directed.
func (g *Graph) HasNeighbor(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Codes returns all known codes sorted ascending. The slice is a copy.
func (g *Graph) Codes() []string {
	return append([]string(nil), g.codes...)
}

// Len returns the number of codes.
func (g *Graph) Len() int { return len(g.codes) }

// EdgeCount returns the number of directed edges, self-loops included.
func (g *Graph) EdgeCount() int { return g.edges }

// Degree returns the out-degree of c (0 for unknown codes).
func (g *Graph) Degree(c string) int { return len(g.adj[c]) }

// Asymmetric lists every edge a→b for which b→a is absent, sorted by (a, b).
// An empty result means the relation is symmetric.
func (g *Graph) Asymmetric() [][2]string {
	var out [][2]string
	for _, a := range g.codes {
		for b := range g.adj[a] {
			if !g.HasNeighbor(b, a) {
				out = append(out, [2]string{a, b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// File: builder.go
// Role: Parse-and-validate step producing an immutable Graph.
// Determinism:
//   - Neighbor order is the order of first appearance across AddNeighbors calls.
//   - Mirrored edges (WithSymmetric) are appended after explicit ones, in sorted source order.

package core

import (
	"fmt"
	"sort"
)

// Builder accumulates codes and neighbor lists. It is not safe for concurrent use.
type Builder struct {
	symmetric bool
	dropLoops bool

	order map[string][]string
	adj   map[string]map[string]struct{}
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		order: make(map[string][]string),
		adj:   make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddCode registers c as a known code with no new neighbors.
// Returns ErrInvalidCode if c is not two letters after normalization.
func (b *Builder) AddCode(c string) error {
	c = NormalizeCode(c)
	if !ValidCode(c) {
		return fmt.Errorf("%w: %q", ErrInvalidCode, c)
	}
	b.ensure(c)

	return nil
}

// AddNeighbors registers c and appends each of ns to its neighbor list.
// Neighbors are registered as codes too. Empty tokens are ignored.
// The call is atomic: on ErrInvalidCode nothing is added.
func (b *Builder) AddNeighbors(c string, ns ...string) error {
	// 1) Validate the source code
	c = NormalizeCode(c)
	if !ValidCode(c) {
		return fmt.Errorf("%w: %q", ErrInvalidCode, c)
	}

	// 2) Validate every neighbor before touching state
	clean := make([]string, 0, len(ns))
	for _, n := range ns {
		n = NormalizeCode(n)
		if n == "" {
			continue
		}
		if !ValidCode(n) {
			return fmt.Errorf("%w: neighbor %q of %q", ErrInvalidCode, n, c)
		}
		clean = append(clean, n)
	}

	// 3) Record edges
	b.ensure(c)
	for _, n := range clean {
		b.ensure(n)
		if n == c && b.dropLoops {
			continue
		}
		b.link(c, n)
	}

	return nil
}

// Build freezes the accumulated relation into a Graph.
// The Builder may keep being used; later changes do not affect the returned Graph.
func (b *Builder) Build() (*Graph, error) {
	if len(b.adj) == 0 {
		return nil, ErrEmptyGraph
	}

	// 1) Snapshot codes in sorted order
	codes := make([]string, 0, len(b.adj))
	for c := range b.adj {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	// 2) Deep-copy adjacency
	g := &Graph{
		codes: codes,
		order: make(map[string][]string, len(codes)),
		adj:   make(map[string]map[string]struct{}, len(codes)),
	}
	for _, c := range codes {
		g.order[c] = append([]string(nil), b.order[c]...)
		set := make(map[string]struct{}, len(b.adj[c]))
		for n := range b.adj[c] {
			set[n] = struct{}{}
		}
		g.adj[c] = set
	}

	// 3) Mirror edges when requested
	if b.symmetric {
		for _, c := range codes {
			for _, n := range b.order[c] {
				if _, ok := g.adj[n][c]; !ok {
					g.adj[n][c] = struct{}{}
					g.order[n] = append(g.order[n], c)
				}
			}
		}
	}

	// 4) Count edges
	for _, set := range g.adj {
		g.edges += len(set)
	}

	return g, nil
}

func (b *Builder) ensure(c string) {
	if _, ok := b.adj[c]; !ok {
		b.adj[c] = make(map[string]struct{})
	}
}

func (b *Builder) link(from, to string) {
	if _, ok := b.adj[from][to]; ok {
		return
	}
	b.adj[from][to] = struct{}{}
	b.order[from] = append(b.order[from], to)
}

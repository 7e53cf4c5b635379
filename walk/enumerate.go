// File: enumerate.go
// Role: Explicit-stack depth-first enumeration of walks and tours.
// Determinism:
//   - Buckets are sorted and deduplicated before being returned, so results do
//     not depend on stack order or neighbor order.

package walk

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/statewords/core"
)

// pollEvery is how many stack pops pass between context checks.
const pollEvery = 1 << 12

// Enumerator walks one graph. It holds no mutable state between calls.
type Enumerator struct {
	g    Graph
	opts Options
}

// NewEnumerator returns an Enumerator over g configured by opts.
func NewEnumerator(g Graph, opts ...Option) *Enumerator {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Enumerator{g: g, opts: o}
}

// Walks returns every k-step walk bucketed by LetterKey.
func (e *Enumerator) Walks(k int) (Index, error) {
	ix, err := e.run(k, false)
	if err != nil {
		return nil, fmt.Errorf("walk: Walks(%d): %w", k, err)
	}

	return ix, nil
}

// Cycles returns every k-step tour, canonicalized, bucketed by LetterKey.
// A tour is recorded once no matter where or in which direction traversal met it.
func (e *Enumerator) Cycles(k int) (Index, error) {
	ix, err := e.run(k, true)
	if err != nil {
		return nil, fmt.Errorf("walk: Cycles(%d): %w", k, err)
	}

	return ix, nil
}

// Each streams every k-step walk to fn in traversal order, without bucketing.
// Returning false from fn stops the enumeration early.
func (e *Enumerator) Each(k int, fn func(w string) bool) error {
	if err := e.checkSteps(k); err != nil {
		return fmt.Errorf("walk: Each(%d): %w", k, err)
	}

	return e.traverse(k, fn)
}

func (e *Enumerator) checkSteps(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, k)
	}
	if k > e.opts.MaxSteps {
		return fmt.Errorf("%w: got %d, max %d", ErrStepsTooLarge, k, e.opts.MaxSteps)
	}

	return nil
}

// run collects walks (closed=false) or canonical tours (closed=true) into an Index.
func (e *Enumerator) run(k int, closed bool) (Index, error) {
	// 1) Validate k before touching the graph
	if err := e.checkSteps(k); err != nil {
		return nil, err
	}

	// 2) Collect into per-key sets
	sets := make(map[string]map[string]struct{})
	record := func(w string) bool {
		if closed {
			// closure: the first code must be a neighbor of the last
			if !e.g.HasNeighbor(w[len(w)-core.CodeLen:], w[:core.CodeLen]) {
				return true
			}
			w = join(canonical(chunks(w)))
		}
		key := LetterKey(w)
		set, ok := sets[key]
		if !ok {
			set = make(map[string]struct{})
			sets[key] = set
		}
		set[w] = struct{}{}

		return true
	}
	if err := e.traverse(k, record); err != nil {
		return nil, err
	}

	// 3) Freeze sets into sorted buckets
	ix := make(Index, len(sets))
	for key, set := range sets {
		bucket := make([]string, 0, len(set))
		for w := range set {
			bucket = append(bucket, w)
		}
		sort.Strings(bucket)
		ix[key] = bucket
	}

	return ix, nil
}

// traverse drains an explicit stack of partial walks. Every partial walk that
// reaches 2k characters is handed to visit and not extended further.
func (e *Enumerator) traverse(k int, visit func(w string) bool) error {
	target := k * core.CodeLen

	// 1) Seed with every code
	stack := e.g.Codes()

	// 2) Pop until empty
	pops := 0
	var w string
	for len(stack) > 0 {
		pops++
		if pops%pollEvery == 0 {
			select {
			case <-e.opts.Ctx.Done():
				return e.opts.Ctx.Err()
			default:
			}
		}

		w = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(w) == target {
			if !visit(w) {
				return nil
			}
			continue
		}

		// 3) Extend by every neighbor of the last code
		e.g.Each(w[len(w)-core.CodeLen:], func(n string) bool {
			stack = append(stack, w+n)
			return true
		})
	}

	// 4) One last check so a cancelled context is never reported as success
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	return nil
}

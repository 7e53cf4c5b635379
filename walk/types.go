package walk

import (
	"context"
	"errors"
	"sort"
)

// DefaultMaxSteps bounds k unless WithMaxSteps says otherwise.
const DefaultMaxSteps = 10

var (
	// ErrInvalidSteps is returned for a step count below 1.
	ErrInvalidSteps = errors.New("walk: steps must be at least 1")

	// ErrStepsTooLarge is returned for a step count above the configured maximum.
	ErrStepsTooLarge = errors.New("walk: steps exceed maximum")
)

// Graph is the adjacency view the enumerator walks. *core.Graph satisfies it.
type Graph interface {
	Codes() []string
	Each(c string, fn func(n string) bool)
	HasNeighbor(a, b string) bool
}

// Option configures an Enumerator.
type Option func(*Options)

// Options holds enumerator settings.
type Options struct {
	// Ctx is polled while the stack drains; defaults to context.Background().
	Ctx context.Context

	// MaxSteps is the largest k accepted by Walks and Cycles.
	MaxSteps int
}

// DefaultOptions returns a background context and DefaultMaxSteps.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: DefaultMaxSteps,
	}
}

// WithContext sets the cancellation context. A nil ctx keeps the default.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps sets the largest accepted k. Values below 1 keep the default.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxSteps = n
		}
	}
}

// Index maps a LetterKey to the walk or tour strings that share it.
// Every bucket is sorted and free of duplicates.
type Index map[string][]string

// Lookup returns the bucket for key, or nil.
func (ix Index) Lookup(key string) []string {
	return ix[key]
}

// Keys returns all letter keys in ascending order.
func (ix Index) Keys() []string {
	out := make([]string, 0, len(ix))
	for k := range ix {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Size returns the number of strings across all buckets.
func (ix Index) Size() int {
	n := 0
	for _, b := range ix {
		n += len(b)
	}

	return n
}

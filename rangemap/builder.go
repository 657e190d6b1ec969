package rangemap

import (
	"fmt"
	"math"
	"sort"
)

// Builder accumulates entries in arbitrary order and produces a validated Map.
// A Builder is single-use: once Build succeeds it refuses further work.
type Builder struct {
	entries  []Entry
	consumed bool
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{entries: make([]Entry, 0, cfg.Capacity)}
}

// AddRange records that [source, source+length) maps onto [dest, dest+length).
// The argument order follows the usual "dest source length" table layout.
// Nothing is validated until Build; a zero length is accepted and ignored.
// Calls on a consumed builder are dropped.
func (b *Builder) AddRange(dest, source, length uint64) {
	if b.consumed {
		return
	}
	b.entries = append(b.entries, Entry{Source: source, Dest: dest, Length: length})
}

// IsEmpty reports whether no entries have been added.
func (b *Builder) IsEmpty() bool {
	return len(b.entries) == 0
}

// Len returns the number of entries added so far, zero-length ones included.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build sorts the collected entries by source start and checks that no two
// source intervals intersect. On success the builder is consumed; on failure
// it is left untouched.
//
// Errors:
//   - ErrBuilderConsumed if Build already succeeded on b.
//   - ErrRangeOverflow if an entry end does not fit in a uint64.
//   - ErrOverlappingRanges if two source intervals share a value.
//
// Complexity: O(n log n) time, O(n) space.
func (b *Builder) Build() (*Map, error) {
	// 1) A builder is single-use.
	if b.consumed {
		return nil, ErrBuilderConsumed
	}

	// 2) Drop zero-length entries and reject ends past math.MaxUint64.
	kept := make([]Entry, 0, len(b.entries))
	for _, e := range b.entries {
		if e.Length == 0 {
			continue
		}
		if e.Source > math.MaxUint64-e.Length || e.Dest > math.MaxUint64-e.Length {
			return nil, fmt.Errorf("%w: source=%d dest=%d length=%d", ErrRangeOverflow, e.Source, e.Dest, e.Length)
		}
		kept = append(kept, e)
	}

	// 3) Stable sort keeps identical inputs identical regardless of insertion order.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Source < kept[j].Source
	})

	// 4) Adjacent-pair scan: after sorting, any overlap shows up between neighbours.
	for i := 1; i < len(kept); i++ {
		if kept[i].Source < kept[i-1].End() {
			return nil, fmt.Errorf("%w: %s and %s", ErrOverlappingRanges, kept[i-1], kept[i])
		}
	}

	b.consumed = true
	b.entries = nil

	return &Map{entries: kept}, nil
}

// MustBuild is like Build but panics on error. Intended for fixtures and
// inputs that are known to be well formed.
func (b *Builder) MustBuild() *Map {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

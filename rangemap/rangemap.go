// Package rangemap implements point and interval lookup over a sorted set of
// disjoint entries.
//
// Both lookups start with a binary search over entry source starts and then,
// for MapRange, walk forward entry by entry, so
//
//   - Get:      O(log n)
//   - MapRange: O(log n + k), k = number of emitted segments
//
// No lookup allocates except the MapRange result slice.
package rangemap

import (
	"sort"
	"strings"
)

// Map is an immutable remapping built by Builder. Entries are sorted by
// Source and their source intervals are pairwise disjoint.
type Map struct {
	entries []Entry
}

// Len returns the number of entries in m.
func (m *Map) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in ascending source order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// upper returns the index of the first entry whose Source is greater than v.
func (m *Map) upper(v uint64) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Source > v
	})
}

// Get returns the destination of v and true, or 0 and false if no entry
// covers v. Values before the first entry or inside a gap are unmapped;
// callers typically fall back to v itself (see GetOr).
func (m *Map) Get(v uint64) (uint64, bool) {
	// The only candidate is the last entry starting at or before v.
	idx := m.upper(v)
	if idx == 0 {
		return 0, false
	}

	e := m.entries[idx-1]
	if v-e.Source >= e.Length {
		return 0, false
	}
	return e.translate(v), true
}

// GetOr returns the destination of v, or v itself when v is unmapped.
func (m *Map) GetOr(v uint64) uint64 {
	if d, ok := m.Get(v); ok {
		return d
	}
	return v
}

// MapRange splits r into maximal sub-ranges that are either entirely covered
// by a single entry (Dest set, same offset as the entry) or entirely
// uncovered (Dest nil). Segments come back in ascending source order, are
// contiguous, and their lengths add up to r.Len. An empty r yields nil.
//
// A range whose end would overflow uint64 is shortened to end at math.MaxUint64.
func (m *Map) MapRange(r Range) []Segment {
	r = r.clamp()
	if r.Len == 0 {
		return nil
	}

	// 1) Start at the entry containing r.From, or else the first one after it.
	idx := m.upper(r.From)
	if idx > 0 && m.entries[idx-1].Contains(r.From) {
		idx--
	}

	// 2) Consume the remaining range front to back.
	var out []Segment
	rest := r
	for rest.Len > 0 {
		// 2a) Past the last entry: the tail is unmapped.
		if idx == len(m.entries) {
			out = append(out, Segment{Source: rest})
			break
		}

		e := m.entries[idx]

		// 2b) Gap before the next entry. The entry stays current.
		if rest.From < e.Source {
			gap := e.Source - rest.From
			if gap > rest.Len {
				gap = rest.Len
			}
			out = append(out, Segment{Source: Range{From: rest.From, Len: gap}})
			rest.From += gap
			rest.Len -= gap
			continue
		}

		// 2c) Overlap with e: take as much as both allow, then move on.
		n := e.End() - rest.From
		if n > rest.Len {
			n = rest.Len
		}
		out = append(out, Segment{
			Source: Range{From: rest.From, Len: n},
			Dest:   &Range{From: e.translate(rest.From), Len: n},
		})
		rest.From += n
		rest.Len -= n
		idx++
	}

	return out
}

func (m *Map) String() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

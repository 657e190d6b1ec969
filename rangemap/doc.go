// Package rangemap provides an immutable, sorted remapping of unsigned
// integer intervals, with point lookup and interval splitting.
//
// Overview:
//
//   - A Map holds disjoint entries (Source, Dest, Length). Each entry maps the
//     half-open source interval [Source, Source+Length) onto
//     [Dest, Dest+Length) with a constant offset.
//   - Maps are assembled by a Builder, which accepts entries in any order,
//     sorts them and rejects overlapping source intervals.
//   - Values or sub-intervals not covered by any entry are reported as
//     unmapped. Callers apply identity mapping on absence (see GetOr and
//     Segment.Resolve).
//   - A Pipeline chains several Maps: the output of one stage feeds the next.
//
// When to use:
//
//   - Translating ids, offsets or addresses through piecewise-linear tables.
//   - Pushing whole intervals through a chain of such tables without
//     enumerating every value inside them.
//
// Key operations:
//
//   - Builder.AddRange(dest, source, length): collect an entry.
//   - Builder.Build(): sort, validate, freeze.
//   - Map.Get(v): point lookup, O(log n).
//   - Map.MapRange(r): split r into maximal mapped/unmapped segments,
//     O(log n + k) for k output segments.
//   - Pipeline.Get / Pipeline.MapRanges: fold lookups over every stage.
//
// Segmentation guarantees for MapRange:
//
//   - Segments are ordered by ascending source start.
//   - Segments are contiguous and non-overlapping.
//   - Segment lengths sum exactly to the input length.
//   - Every mapped segment lies entirely within one entry.
//
// Example:
//
//	b := rangemap.NewBuilder()
//	b.AddRange(7, 0, 2) // [0,2) -> [7,9)
//	b.AddRange(2, 5, 2) // [5,7) -> [2,4)
//	m, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, seg := range m.MapRange(rangemap.Range{From: 0, Len: 10}) {
//	    fmt.Println(seg)
//	}
//	// [0,2)->[7,9)
//	// [2,5)->unmapped
//	// [5,7)->[2,4)
//	// [7,10)->unmapped
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrOverlappingRanges: two entries share source values; returned by Build.
//   - ErrRangeOverflow:     Source+Length or Dest+Length exceeds math.MaxUint64.
//   - ErrBuilderConsumed:   Build or AddRange called after a successful Build.
//   - ErrBadCapacity:       WithCapacity given a negative value (panics).
//
// Lookups never fail: "unmapped" is an ordinary result, not an error.
//
// Thread safety:
//
//   - Map and Pipeline are never mutated after construction, so any number of
//     goroutines may query them concurrently.
//   - Builder is not safe for concurrent use.
package rangemap

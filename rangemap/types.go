// Package rangemap defines the entry, range and segment types, the
// functional options and the sentinel errors shared by Builder, Map
// and Pipeline.
package rangemap

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Builder.Build.
var (
	// ErrOverlappingRanges indicates that two entries cover at least one common source value.
	ErrOverlappingRanges = errors.New("rangemap: overlapping ranges")

	// ErrRangeOverflow indicates that an entry's source or destination end
	// does not fit in a uint64.
	ErrRangeOverflow = errors.New("rangemap: range end overflows uint64")

	// ErrBuilderConsumed indicates that a Builder was used after Build succeeded.
	ErrBuilderConsumed = errors.New("rangemap: builder already consumed")

	// ErrBadCapacity indicates a negative capacity passed to WithCapacity.
	ErrBadCapacity = errors.New("rangemap: capacity must be non-negative")
)

// Entry maps the source interval [Source, Source+Length) onto
// [Dest, Dest+Length).
type Entry struct {
	Source uint64 // first source value covered
	Dest   uint64 // value that Source maps to
	Length uint64 // number of covered values
}

// End returns the exclusive end of the source interval.
func (e Entry) End() uint64 {
	return e.Source + e.Length
}

// Contains reports whether v lies in the source interval.
func (e Entry) Contains(v uint64) bool {
	return v >= e.Source && v-e.Source < e.Length
}

// translate maps an in-range source value to its destination.
func (e Entry) translate(v uint64) uint64 {
	return e.Dest + (v - e.Source)
}

func (e Entry) String() string {
	return fmt.Sprintf("[%d,%d)->[%d,%d)", e.Source, e.End(), e.Dest, e.Dest+e.Length)
}

// Range is the half-open interval [From, From+Len).
type Range struct {
	From uint64
	Len  uint64
}

// End returns the exclusive end of r.
func (r Range) End() uint64 {
	return r.From + r.Len
}

// IsEmpty reports whether r covers no values.
func (r Range) IsEmpty() bool {
	return r.Len == 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.From, r.End())
}

// clamp shortens r so that its end is representable.
func (r Range) clamp() Range {
	if r.Len > math.MaxUint64-r.From {
		r.Len = math.MaxUint64 - r.From
	}
	return r
}

// Segment is one piece of a MapRange result. Dest is nil when Source is
// not covered by any entry.
type Segment struct {
	Source Range
	Dest   *Range
}

// Mapped reports whether the segment was covered by an entry.
func (s Segment) Mapped() bool {
	return s.Dest != nil
}

// Resolve returns the destination range, or Source itself when unmapped.
func (s Segment) Resolve() Range {
	if s.Dest == nil {
		return s.Source
	}
	return *s.Dest
}

func (s Segment) String() string {
	if s.Dest == nil {
		return s.Source.String() + "->unmapped"
	}
	return s.Source.String() + "->" + s.Dest.String()
}

// Options configures a Builder.
//
// Capacity – initial capacity of the entry slice. Must be ≥ 0. Default 0.
type Options struct {
	Capacity int
}

// Option represents a functional option for NewBuilder.
type Option func(*Options)

// WithCapacity pre-sizes the builder for n entries.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the Builder defaults.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// PipelineOptions configures a Pipeline.
//
// Normalize – merge touching or overlapping ranges between stages in MapRanges.
type PipelineOptions struct {
	Normalize bool
}

// PipelineOption represents a functional option for NewPipeline.
type PipelineOption func(*PipelineOptions)

// WithNormalize makes MapRanges coalesce its working set after every stage.
// The covered values are unchanged; only the number of ranges shrinks.
func WithNormalize() PipelineOption {
	return func(o *PipelineOptions) {
		o.Normalize = true
	}
}

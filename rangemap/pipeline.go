package rangemap

import "sort"

// Pipeline applies a sequence of Maps one after another. Each stage falls back
// to identity for unmapped values, so a Pipeline is total: every input value
// and every input range has an image.
type Pipeline struct {
	stages []*Map
	opts   PipelineOptions
}

// NewPipeline returns a Pipeline over the given stages, in order.
// Nil maps are skipped.
func NewPipeline(maps []*Map, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{stages: make([]*Map, 0, len(maps))}
	for _, opt := range opts {
		opt(&p.opts)
	}
	for _, m := range maps {
		p.Append(m)
	}
	return p
}

// Append adds m as the last stage. Append is not safe to call while other
// goroutines query p.
func (p *Pipeline) Append(m *Map) {
	if m == nil {
		return
	}
	p.stages = append(p.stages, m)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stages returns a copy of the stage list.
func (p *Pipeline) Stages() []*Map {
	out := make([]*Map, len(p.stages))
	copy(out, p.stages)
	return out
}

// Get pushes v through every stage.
func (p *Pipeline) Get(v uint64) uint64 {
	for _, m := range p.stages {
		v = m.GetOr(v)
	}
	return v
}

// MapRange pushes r through every stage and returns the resulting ranges.
func (p *Pipeline) MapRange(r Range) []Range {
	return p.MapRanges([]Range{r})
}

// MapRanges pushes every range in rs through every stage. The result covers
// exactly the images of all values in rs; its order is unspecified unless the
// pipeline normalizes, in which case it is sorted and coalesced.
func (p *Pipeline) MapRanges(rs []Range) []Range {
	cur := make([]Range, 0, len(rs))
	for _, r := range rs {
		if r = r.clamp(); !r.IsEmpty() {
			cur = append(cur, r)
		}
	}
	if p.opts.Normalize {
		cur = Normalize(cur)
	}

	for _, m := range p.stages {
		next := make([]Range, 0, len(cur))
		for _, r := range cur {
			for _, seg := range m.MapRange(r) {
				next = append(next, seg.Resolve())
			}
		}
		if p.opts.Normalize {
			next = Normalize(next)
		}
		cur = next
	}

	return cur
}

// Normalize returns the non-empty ranges of rs sorted by From, with
// overlapping or touching ranges merged. rs is not modified.
func Normalize(rs []Range) []Range {
	out := make([]Range, 0, len(rs))
	for _, r := range rs {
		if r = r.clamp(); !r.IsEmpty() {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return out
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].From < out[j].From
	})

	merged := out[:1]
	for _, r := range out[1:] {
		last := &merged[len(merged)-1]
		if r.From <= last.End() {
			if r.End() > last.End() {
				last.Len = r.End() - last.From
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// MinFrom returns the smallest start among the non-empty ranges in rs.
// ok is false when rs holds no non-empty range.
func MinFrom(rs []Range) (minFrom uint64, ok bool) {
	for _, r := range rs {
		if r.IsEmpty() {
			continue
		}
		if !ok || r.From < minFrom {
			minFrom, ok = r.From, true
		}
	}
	return minFrom, ok
}

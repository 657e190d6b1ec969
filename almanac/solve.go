package almanac

import (
	"fmt"

	"github.com/katalvlaran/remap/rangemap"
)

// Pipeline returns the stages chained in file order. Range queries on the
// returned pipeline coalesce their working set after every stage.
func (a *Almanac) Pipeline() *rangemap.Pipeline {
	maps := make([]*rangemap.Map, len(a.Stages))
	for i, s := range a.Stages {
		maps[i] = s.Map
	}
	return rangemap.NewPipeline(maps, rangemap.WithNormalize())
}

// StageNames lists the stage names in application order.
func (a *Almanac) StageNames() []string {
	names := make([]string, len(a.Stages))
	for i, s := range a.Stages {
		names[i] = s.Name
	}
	return names
}

// Locations maps every seed through all stages, preserving seed order.
func (a *Almanac) Locations() []uint64 {
	p := a.Pipeline()
	out := make([]uint64, len(a.Seeds))
	for i, seed := range a.Seeds {
		out[i] = p.Get(seed)
	}
	return out
}

// LowestLocation returns the smallest location of any single seed.
func (a *Almanac) LowestLocation() (uint64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}

	locs := a.Locations()
	lowest := locs[0]
	for _, l := range locs[1:] {
		lowest = min(lowest, l)
	}
	return lowest, nil
}

// SeedRanges reads the seed list as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]rangemap.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.Seeds))
	}

	out := make([]rangemap.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, rangemap.Range{From: a.Seeds[i], Len: a.Seeds[i+1]})
	}
	return out, nil
}

// LowestRangeLocation returns the smallest location of any seed covered by
// the seed ranges. Ranges of length zero contribute nothing.
func (a *Almanac) LowestRangeLocation() (uint64, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}

	lowest, ok := rangemap.MinFrom(a.Pipeline().MapRanges(seeds))
	if !ok {
		return 0, ErrNoSeeds
	}
	return lowest, nil
}

// Solve computes both answers.
func (a *Almanac) Solve() (Answers, error) {
	var ans Answers
	var err error

	if ans.Part1, err = a.LowestLocation(); err != nil {
		return Answers{}, fmt.Errorf("part 1: %w", err)
	}
	if ans.Part2, err = a.LowestRangeLocation(); err != nil {
		return Answers{}, fmt.Errorf("part 2: %w", err)
	}
	return ans, nil
}

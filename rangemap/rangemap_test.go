package rangemap_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/remap/rangemap"
)

// fixture builds the two-entry map used throughout:
// [0,2)->[7,9) and [5,7)->[2,4).
func fixture(t testing.TB) *rangemap.Map {
	t.Helper()
	b := rangemap.NewBuilder()
	b.AddRange(7, 0, 2)
	b.AddRange(2, 5, 2)
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func mapped(from, n, dest uint64) rangemap.Segment {
	return rangemap.Segment{
		Source: rangemap.Range{From: from, Len: n},
		Dest:   &rangemap.Range{From: dest, Len: n},
	}
}

func unmapped(from, n uint64) rangemap.Segment {
	return rangemap.Segment{Source: rangemap.Range{From: from, Len: n}}
}

// ------------------------------------------------------------------------
// 1. Fixture scenarios.
// ------------------------------------------------------------------------

func TestMapRange_Fixtures(t *testing.T) {
	m := fixture(t)

	tests := []struct {
		name string
		in   rangemap.Range
		want []rangemap.Segment
	}{
		{
			name: "covers both entries and the tail",
			in:   rangemap.Range{From: 0, Len: 10},
			want: []rangemap.Segment{mapped(0, 2, 7), unmapped(2, 3), mapped(5, 2, 2), unmapped(7, 3)},
		},
		{
			name: "ends exactly at the last entry end",
			in:   rangemap.Range{From: 0, Len: 7},
			want: []rangemap.Segment{mapped(0, 2, 7), unmapped(2, 3), mapped(5, 2, 2)},
		},
		{
			name: "ends inside the last entry",
			in:   rangemap.Range{From: 0, Len: 6},
			want: []rangemap.Segment{mapped(0, 2, 7), unmapped(2, 3), mapped(5, 1, 2)},
		},
		{
			name: "starts inside the first entry",
			in:   rangemap.Range{From: 1, Len: 6},
			want: []rangemap.Segment{mapped(1, 1, 8), unmapped(2, 3), mapped(5, 2, 2)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.MapRange(tc.in))
		})
	}
}

func TestGet_Fixtures(t *testing.T) {
	m := fixture(t)

	v, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(8), v)

	_, ok = m.Get(3)
	assert.False(t, ok, "3 lies in the gap between entries")

	v, ok = m.Get(6)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), v)

	_, ok = m.Get(100)
	assert.False(t, ok, "100 lies past the last entry")
}

func TestGetOr_IdentityOnAbsence(t *testing.T) {
	m := fixture(t)
	assert.Equal(t, uint64(8), m.GetOr(1))
	assert.Equal(t, uint64(3), m.GetOr(3))
	assert.Equal(t, uint64(100), m.GetOr(100))
}

// ------------------------------------------------------------------------
// 2. Edge cases.
// ------------------------------------------------------------------------

func TestMapRange_EmptyInput(t *testing.T) {
	m := fixture(t)
	assert.Empty(t, m.MapRange(rangemap.Range{From: 3, Len: 0}))
}

func TestMapRange_PastAllEntries(t *testing.T) {
	m := fixture(t)
	got := m.MapRange(rangemap.Range{From: 50, Len: 4})
	assert.Equal(t, []rangemap.Segment{unmapped(50, 4)}, got)
}

func TestMapRange_InsideGapOnly(t *testing.T) {
	// A short range entirely inside a gap must not spill past its own end.
	m := fixture(t)
	got := m.MapRange(rangemap.Range{From: 2, Len: 1})
	assert.Equal(t, []rangemap.Segment{unmapped(2, 1)}, got)
}

func TestMapRange_BeforeFirstEntry(t *testing.T) {
	b := rangemap.NewBuilder()
	b.AddRange(100, 10, 5)
	m := b.MustBuild()

	got := m.MapRange(rangemap.Range{From: 0, Len: 20})
	assert.Equal(t, []rangemap.Segment{unmapped(0, 10), mapped(10, 5, 100), unmapped(15, 5)}, got)
}

func TestMapRange_AdjacentEntries(t *testing.T) {
	b := rangemap.NewBuilder()
	b.AddRange(50, 0, 3)
	b.AddRange(20, 3, 3)
	m := b.MustBuild()

	got := m.MapRange(rangemap.Range{From: 1, Len: 4})
	assert.Equal(t, []rangemap.Segment{mapped(1, 2, 51), mapped(3, 2, 20)}, got)
}

func TestMapRange_EmptyMap(t *testing.T) {
	m := rangemap.NewBuilder().MustBuild()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, []rangemap.Segment{unmapped(4, 4)}, m.MapRange(rangemap.Range{From: 4, Len: 4}))
	_, ok := m.Get(4)
	assert.False(t, ok)
}

func TestMapRange_ClampsOverflowingRange(t *testing.T) {
	m := fixture(t)
	got := m.MapRange(rangemap.Range{From: math.MaxUint64 - 2, Len: 10})
	assert.Equal(t, []rangemap.Segment{unmapped(math.MaxUint64-2, 2)}, got)
}

func TestGet_EntryAtTopOfDomain(t *testing.T) {
	b := rangemap.NewBuilder()
	b.AddRange(0, math.MaxUint64-4, 4)
	m := b.MustBuild()

	v, ok := m.Get(math.MaxUint64 - 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), v)

	_, ok = m.Get(math.MaxUint64)
	assert.False(t, ok)
}

func TestSegment_Resolve(t *testing.T) {
	assert.Equal(t, rangemap.Range{From: 7, Len: 2}, mapped(0, 2, 7).Resolve())
	assert.Equal(t, rangemap.Range{From: 2, Len: 3}, unmapped(2, 3).Resolve())
	assert.True(t, mapped(0, 2, 7).Mapped())
	assert.False(t, unmapped(2, 3).Mapped())
	assert.Equal(t, "[0,2)->[7,9)", mapped(0, 2, 7).String())
	assert.Equal(t, "[2,5)->unmapped", unmapped(2, 3).String())
}

func TestMap_EntriesAreSortedCopies(t *testing.T) {
	m := fixture(t)
	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, rangemap.Entry{Source: 0, Dest: 7, Length: 2}, entries[0])
	assert.Equal(t, rangemap.Entry{Source: 5, Dest: 2, Length: 2}, entries[1])

	entries[0].Dest = 999
	v, _ := m.Get(0)
	assert.Equal(t, uint64(7), v, "mutating the copy must not affect the map")
	assert.Equal(t, "{[0,2)->[7,9) [5,7)->[2,4)}", m.String())
}

// ------------------------------------------------------------------------
// 3. Laws, checked on random maps.
// ------------------------------------------------------------------------

// randomMap builds a map of up to n disjoint entries within [0, span).
func randomMap(t testing.TB, rng *rand.Rand, n int, span uint64) *rangemap.Map {
	t.Helper()
	b := rangemap.NewBuilder(rangemap.WithCapacity(n))
	var at uint64
	for i := 0; i < n && at < span; i++ {
		at += uint64(rng.Intn(6)) // optional gap
		length := uint64(rng.Intn(8))
		b.AddRange(uint64(rng.Intn(1000)), at, length)
		at += length
	}
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestMapRange_CoverageAndConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		m := randomMap(t, rng, 12, 80)
		in := rangemap.Range{From: uint64(rng.Intn(90)), Len: uint64(rng.Intn(40))}
		segs := m.MapRange(in)

		// Coverage: contiguous, ordered, lengths sum to the input length.
		next := in.From
		var total uint64
		for _, s := range segs {
			require.Equal(t, next, s.Source.From, "segments must be contiguous")
			require.NotZero(t, s.Source.Len, "segments must be non-empty")
			next = s.Source.End()
			total += s.Source.Len
		}
		require.Equal(t, in.Len, total)

		// Consistency: Get agrees with every segment, value by value.
		for _, s := range segs {
			for off := uint64(0); off < s.Source.Len; off++ {
				v := s.Source.From + off
				got, ok := m.Get(v)
				if s.Mapped() {
					require.True(t, ok, "value %d should be mapped", v)
					require.Equal(t, s.Dest.From+off, got)
				} else {
					require.False(t, ok, "value %d should be unmapped", v)
				}
			}
		}
	}
}

func TestGet_AbsentMeansUncovered(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := randomMap(t, rng, 20, 150)
	entries := m.Entries()

	for v := uint64(0); v < 200; v++ {
		if _, ok := m.Get(v); ok {
			continue
		}
		for _, e := range entries {
			assert.False(t, e.Contains(v), "unmapped %d lies inside %v", v, e)
		}
	}
}

func TestMapRange_MaximalSegments(t *testing.T) {
	// Two neighbouring unmapped segments would mean a gap was split needlessly.
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		m := randomMap(t, rng, 10, 60)
		segs := m.MapRange(rangemap.Range{From: 0, Len: 80})
		for i := 1; i < len(segs); i++ {
			assert.False(t, !segs[i-1].Mapped() && !segs[i].Mapped(), "adjacent unmapped segments at %d", i)
		}
	}
}

package almanac

import (
	"errors"

	"github.com/katalvlaran/remap/rangemap"
)

// Sentinel errors for parsing and solving.
var (
	// ErrEmptyInput indicates the input holds no lines at all.
	ErrEmptyInput = errors.New("almanac: empty input")

	// ErrMissingSeeds indicates the first line does not start with "seeds:".
	ErrMissingSeeds = errors.New("almanac: first line must start with \"seeds:\"")

	// ErrMissingSeparator indicates the seeds line is not followed by a blank line.
	ErrMissingSeparator = errors.New("almanac: expected blank line after seeds")

	// ErrBadNumber indicates a token that is not an unsigned 64-bit integer.
	ErrBadNumber = errors.New("almanac: invalid number")

	// ErrBadTriple indicates a map line without exactly three numbers.
	ErrBadTriple = errors.New("almanac: map line must hold dest, source and length")

	// ErrEntryOutsideBlock indicates a map line that precedes every "map:" header.
	ErrEntryOutsideBlock = errors.New("almanac: map line outside of a map block")

	// ErrNoSeeds indicates an almanac without seeds, so no minimum exists.
	ErrNoSeeds = errors.New("almanac: no seeds")

	// ErrOddSeedCount indicates the seed list cannot be read as (start, length) pairs.
	ErrOddSeedCount = errors.New("almanac: seed ranges need an even number of values")
)

// Stage is one named map block, e.g. "seed-to-soil".
type Stage struct {
	Name string
	Map  *rangemap.Map
}

// Almanac is the parsed input: the seed list and the stages in file order.
type Almanac struct {
	Seeds  []uint64
	Stages []Stage
}

// Answers holds both results.
type Answers struct {
	Part1 uint64 `json:"part1" yaml:"part1"`
	Part2 uint64 `json:"part2" yaml:"part2"`
}

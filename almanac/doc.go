// Package almanac parses a seed almanac and answers the two questions asked
// of it: the lowest location reached by any listed seed, and the lowest
// location reached by any seed inside the listed seed ranges.
//
// Input format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	0 15 37
//	37 52 2
//	39 0 15
//
// Each "<name> map:" block lists "dest source length" triples and becomes
// one rangemap.Map stage. Stages are applied in file order; a value that no
// entry covers passes through unchanged.
//
// Part one maps every seed individually. Part two reads the seed list as
// (start, length) pairs and pushes whole intervals through the pipeline, so
// its cost grows with the number of interval splits rather than with the
// number of seeds.
//
// Errors are sentinel values (ErrMissingSeeds, ErrBadTriple, ...) wrapped
// with the offending line number; test them with errors.Is.
package almanac

// Package remap is a small toolkit for translating unsigned integers and
// whole integer intervals through piecewise-linear lookup tables.
//
// 🚀 What is in the module?
//
//	• rangemap/  – Builder, Map and Pipeline: sorted disjoint entries,
//	               O(log n) point lookup, interval splitting into
//	               mapped/unmapped segments, chaining of several maps
//	• almanac/   – parser and solver for seed almanacs: a seed list plus
//	               named "<from>-to-<to> map:" blocks chained in file order
//	• cmd/almanac – command-line front end (text, JSON or YAML output)
//
// ✨ Guarantees
//
//   - Maps are immutable once built and safe for concurrent readers.
//   - Overlapping entries are rejected at build time, never at lookup time.
//   - "Unmapped" is an explicit result (ok=false, nil Dest), so a mapping to
//     zero is never confused with a miss.
//   - Interval splitting preserves coverage: segments are ordered,
//     contiguous, and sum to the input length.
//
// Quick ASCII example:
//
//	source  0 1 2 3 4 5 6 7 8 9
//	        [-A-)     [-B-)
//	A: [0,2) -> [7,9)    B: [5,7) -> [2,4)
//
//	MapRange([0,10)) = [0,2)->[7,9)  [2,5)->unmapped  [5,7)->[2,4)  [7,10)->unmapped
//
//	go get github.com/katalvlaran/remap
package remap

// Package lvlalgo is a small collection of classic algorithms with a
// sequence comparison engine at its heart.
//
// 🚀 What is lvlalgo?
//
//	A generic, dependency-light library that brings together:
//		• Sequence comparison: longest common subsequence & substring
//		• Text comparison by code point or grapheme cluster, with optional normalization
//		• Sorting: bubble, insertion, merge, quick
//		• Binary search over sorted slices
//		• Number theory: gcd, relative primality, factors
//
// ✨ Why choose lvlalgo?
//
//   - Build once, query many – comparators keep their DP table
//   - Generic – any comparable element type, any ordered key
//   - Predictable – documented tie-breaks, no hidden randomness
//
// Packages:
//
//	compare/   — Subsequence, Substring, text comparators, length-only modes
//	matrix/    — dense integer Table backing every DP grid
//	sorting/   — four comparison sorts behind one Algorithm switch
//	search/    — binary search
//	numtheory/ — GCD, RelativelyPrime, Factors
//	cmd/lvlalgo — command-line front end
//
// Quick example:
//
//	lcs := compare.NewSubsequence([]rune("leighxxxft"), []rune("right"))
//	s, _ := lcs.Reconstruct() // "ight"
//
//	go get github.com/katalvlaran/lvlalgo
package lvlalgo

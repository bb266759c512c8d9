// Package compare_test provides lightweight helpers shared across *_test.go
// files in this package: deterministic random sequences and independent
// oracles used to check comparator output.
package compare_test

import (
	"math/rand"
	"testing"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the fixed seed for every randomized test in this package.
	seedDet = int64(1)

	// propertyRounds is the number of random pairs checked per property.
	propertyRounds = 300

	// maxRandLen bounds random sequence length (inclusive).
	maxRandLen = 24
)

// smallAlphabet keeps collisions frequent so ties and long matches occur.
var smallAlphabet = []rune("abcd")

// rngFromSeed returns a deterministic *rand.Rand. Not goroutine-safe.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomRunes returns a sequence of length 0..maxLen drawn from alphabet.
func randomRunes(r *rand.Rand, alphabet []rune, maxLen int) []rune {
	n := r.Intn(maxLen + 1)
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}

	return out
}

// isSubsequence reports whether sub appears in seq in order.
func isSubsequence[T comparable](sub, seq []T) bool {
	k := 0
	for _, v := range seq {
		if k < len(sub) && sub[k] == v {
			k++
		}
	}

	return k == len(sub)
}

// indexOfRun returns the first index where run occurs contiguously in seq, or -1.
func indexOfRun[T comparable](run, seq []T) int {
	for i := 0; i+len(run) <= len(seq); i++ {
		ok := true
		for k := range run {
			if seq[i+k] != run[k] {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}

	return -1
}

// bruteSubstringLength is an O(n·m·min(n,m)) oracle for the longest common substring.
func bruteSubstringLength[T comparable](a, b []T) int {
	best := 0
	for i := range a {
		for j := range b {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			best = max(best, k)
		}
	}

	return best
}

// bruteSubsequenceLength is a memoized top-down oracle for the LCS length.
// It recurses over suffixes, independent of the bottom-up prefix table.
func bruteSubsequenceLength[T comparable](a, b []T) int {
	memo := make(map[[2]int]int)
	var rec func(i, j int) int
	rec = func(i, j int) int {
		if i == len(a) || j == len(b) {
			return 0
		}
		key := [2]int{i, j}
		if v, ok := memo[key]; ok {
			return v
		}
		var v int
		if a[i] == b[j] {
			v = 1 + rec(i+1, j+1)
		} else {
			v = max(rec(i+1, j), rec(i, j+1))
		}
		memo[key] = v

		return v
	}

	return rec(0, 0)
}

// forEachRandomPair runs fn on propertyRounds deterministic random pairs.
func forEachRandomPair(t *testing.T, fn func(t *testing.T, a, b []rune)) {
	t.Helper()
	r := rngFromSeed(seedDet)
	for round := 0; round < propertyRounds; round++ {
		a := randomRunes(r, smallAlphabet, maxRandLen)
		b := randomRunes(r, smallAlphabet, maxRandLen)
		fn(t, a, b)
		if t.Failed() {
			t.Logf("failing pair (round %d): %q vs %q", round, string(a), string(b))
			return
		}
	}
}

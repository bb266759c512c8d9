package compare_test

import (
	"testing"

	"github.com/katalvlaran/lvlalgo/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubstring_KnownPairs checks lengths and reconstructed text for fixed inputs.
func TestSubstring_KnownPairs(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
		wantLen     int
		wantText    string
	}{
		{"hello world", "!!!!Hello WorldXXXXX", "XXX   Hello World@cvcvcvc", 11, "Hello World"},
		{"why hello", "!!!Why hello world you world hello", "subby world Why hello red car go fast", 10, "Why hello "},
		{"today", "sunny today outside", "today is cold", 6, "today "},
		{"identical", "abc", "abc", 3, "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := compare.NewSubstring([]rune(tc.left), []rune(tc.right))
			assert.Equal(t, tc.wantLen, sub.Length())

			got, ok := sub.Reconstruct()
			require.True(t, ok)
			assert.Equal(t, tc.wantText, string(got))
		})
	}
}

// TestSubstring_NoMatch covers empty inputs and disjoint alphabets.
func TestSubstring_NoMatch(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
	}{
		{"right empty", "Why hello world you world hello", ""},
		{"left empty", "", "abc"},
		{"both empty", "", ""},
		{"disjoint", "abc", "xyz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := compare.NewSubstring([]rune(tc.left), []rune(tc.right))
			assert.Zero(t, sub.Length())

			got, ok := sub.Reconstruct()
			assert.False(t, ok)
			assert.Nil(t, got)

			_, ok = sub.Span()
			assert.False(t, ok)
		})
	}
}

// TestSubstring_FirstMaximumWins pins the tie-break: "ab" ends on an earlier
// row than "cd", so it is kept even though both have length 2.
func TestSubstring_FirstMaximumWins(t *testing.T) {
	sub := compare.NewSubstring([]rune("abXcd"), []rune("cdYab"))
	require.Equal(t, 2, sub.Length())

	got, ok := sub.Reconstruct()
	require.True(t, ok)
	assert.Equal(t, "ab", string(got))

	span, ok := sub.Span()
	require.True(t, ok)
	assert.Equal(t, compare.Span{Left: 0, Right: 3, Len: 2}, span)
}

// TestSubstring_Span checks offsets in both inputs.
func TestSubstring_Span(t *testing.T) {
	left := []rune("!!!!Hello WorldXXXXX")
	right := []rune("XXX   Hello World@cvcvcvc")
	sub := compare.NewSubstring(left, right)

	span, ok := sub.Span()
	require.True(t, ok)
	assert.Equal(t, compare.Span{Left: 4, Right: 6, Len: 11}, span)
	assert.Equal(t, string(left[span.Left:span.Left+span.Len]), string(right[span.Right:span.Right+span.Len]))
}

// TestSubstring_GenericElements runs the comparator over ints.
func TestSubstring_GenericElements(t *testing.T) {
	left := []int{117, 1, 3, 99, 10, 7, 7, 2}
	right := []int{9, 3, 99, 10, 8, 7, 7, 2}

	sub := compare.NewSubstring(left, right)
	got, ok := sub.Reconstruct()
	require.True(t, ok)
	assert.Equal(t, []int{3, 99, 10}, got, "first of two length-3 runs")
}

// TestSubstring_OwnsInputsAndResults verifies input copies and fresh results.
func TestSubstring_OwnsInputsAndResults(t *testing.T) {
	left := []rune("xabcx")
	sub := compare.NewSubstring(left, []rune("abc"))
	left[2] = '#'

	first, ok := sub.Reconstruct()
	require.True(t, ok)
	first[0] = '#'

	second, ok := sub.Reconstruct()
	require.True(t, ok)
	assert.Equal(t, "abc", string(second))
	assert.Equal(t, "3", sub.String())
}

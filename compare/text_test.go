package compare_test

import (
	"testing"

	"github.com/katalvlaran/lvlalgo/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestText_KnownPairs covers the one-shot helpers on ASCII input.
func TestText_KnownPairs(t *testing.T) {
	s, n := compare.SubsequenceOf("leighxxxft", "right")
	assert.Equal(t, "ight", s)
	assert.Equal(t, 4, n)

	s, n = compare.SubstringOf("!!!!Hello WorldXXXXX", "XXX   Hello World@cvcvcvc")
	assert.Equal(t, "Hello World", s)
	assert.Equal(t, 11, n)

	s, n = compare.SubstringOf("anything", "")
	assert.Empty(t, s)
	assert.Zero(t, n)
}

// TestText_MultiByte verifies that multi-byte characters are compared and
// reassembled whole, and lengths are counted in characters.
func TestText_MultiByte(t *testing.T) {
	s, n := compare.SubstringOf("日本語のテキスト", "これは日本語です")
	assert.Equal(t, "日本語", s)
	assert.Equal(t, 3, n)

	s, n = compare.SubsequenceOf("a😀xb", "😀yb")
	assert.Equal(t, "😀b", s)
	assert.Equal(t, 2, n)
}

// TestText_InvalidUTF8 keeps raw bytes instead of rewriting them to U+FFFD.
func TestText_InvalidUTF8(t *testing.T) {
	s, n := compare.SubstringOf("\xffab", "z\xffab")
	assert.Equal(t, "\xffab", s)
	assert.Equal(t, 3, n)
}

// TestText_Graphemes checks that combining sequences are single elements
// in grapheme mode but not in rune mode.
func TestText_Graphemes(t *testing.T) {
	left := "cafe\u0301" // e + COMBINING ACUTE ACCENT
	right := "cafe"

	byRune, err := compare.NewTextSubstring(left, right)
	require.NoError(t, err)
	got, ok := byRune.Text()
	require.True(t, ok)
	assert.Equal(t, "cafe", got)

	byGrapheme, err := compare.NewTextSubstring(left, right, compare.WithUnit(compare.Graphemes))
	require.NoError(t, err)
	got, ok = byGrapheme.Text()
	require.True(t, ok)
	assert.Equal(t, "caf", got)
	assert.Equal(t, 3, byGrapheme.Length())
}

// TestText_Normalization compares precomposed and decomposed spellings.
func TestText_Normalization(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	raw, err := compare.NewTextSubstring(composed, decomposed)
	require.NoError(t, err)
	assert.Equal(t, 3, raw.Length(), "without normalization only \"caf\" matches")

	nfc, err := compare.NewTextSubstring(composed, decomposed, compare.WithNormalization(compare.NFC))
	require.NoError(t, err)
	got, ok := nfc.Text()
	require.True(t, ok)
	assert.Equal(t, composed, got)
	assert.Equal(t, 4, nfc.Length())

	nfd, err := compare.NewTextSubsequence(composed, decomposed, compare.WithNormalization(compare.NFD))
	require.NoError(t, err)
	got, ok = nfd.Text()
	require.True(t, ok)
	assert.Equal(t, decomposed, got)
	assert.Equal(t, 5, nfd.Length())
}

// TestText_NoMatch returns ("", false) for disjoint input.
func TestText_NoMatch(t *testing.T) {
	lcs, err := compare.NewTextSubsequence("abc", "xyz")
	require.NoError(t, err)
	got, ok := lcs.Text()
	assert.False(t, ok)
	assert.Empty(t, got)

	sub, err := compare.NewTextSubstring("", "xyz")
	require.NoError(t, err)
	got, ok = sub.Text()
	assert.False(t, ok)
	assert.Empty(t, got)
}

// TestText_BadOptions surfaces ErrOptionViolation from the constructors.
func TestText_BadOptions(t *testing.T) {
	_, err := compare.NewTextSubsequence("a", "a", compare.WithUnit(compare.Unit(9)))
	assert.ErrorIs(t, err, compare.ErrOptionViolation)

	_, err = compare.NewTextSubstring("a", "a", compare.WithNormalization(compare.Normalization(-1)))
	assert.ErrorIs(t, err, compare.ErrOptionViolation)

	// nil options are skipped
	_, err = compare.NewTextSubstring("a", "a", nil)
	assert.NoError(t, err)
}

// TestParseUnitAndNormalization covers the name parsers used by the CLI.
func TestParseUnitAndNormalization(t *testing.T) {
	u, err := compare.ParseUnit("GRAPHEMES")
	require.NoError(t, err)
	assert.Equal(t, compare.Graphemes, u)
	assert.Equal(t, "graphemes", u.String())

	_, err = compare.ParseUnit("bytes")
	assert.ErrorIs(t, err, compare.ErrOptionViolation)

	n, err := compare.ParseNormalization("")
	require.NoError(t, err)
	assert.Equal(t, compare.NoNormalization, n)

	n, err = compare.ParseNormalization("nfkc")
	require.NoError(t, err)
	assert.Equal(t, compare.NFKC, n)
	assert.Equal(t, "nfkc", n.String())

	_, err = compare.ParseNormalization("nfx")
	assert.ErrorIs(t, err, compare.ErrOptionViolation)
}

package compare

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// TextSubsequence is a Subsequence over the characters of two strings.
type TextSubsequence struct {
	*Subsequence[string]
}

// TextSubstring is a Substring over the characters of two strings.
type TextSubstring struct {
	*Substring[string]
}

// NewTextSubsequence splits left and right into characters according to
// opts and builds their LCS table. The only error is ErrOptionViolation.
func NewTextSubsequence(left, right string, opts ...TextOption) (*TextSubsequence, error) {
	o, err := resolveTextOptions(opts)
	if err != nil {
		return nil, err
	}

	return &TextSubsequence{NewSubsequence(segment(left, o), segment(right, o))}, nil
}

// NewTextSubstring splits left and right into characters according to
// opts and builds their run-length table. The only error is ErrOptionViolation.
func NewTextSubstring(left, right string, opts ...TextOption) (*TextSubstring, error) {
	o, err := resolveTextOptions(opts)
	if err != nil {
		return nil, err
	}

	return &TextSubstring{NewSubstring(segment(left, o), segment(right, o))}, nil
}

// Text returns the longest common subsequence as a string, or ("", false).
func (t *TextSubsequence) Text() (string, bool) {
	parts, ok := t.Reconstruct()
	if !ok {
		return "", false
	}

	return strings.Join(parts, ""), true
}

// Text returns the longest common substring as a string, or ("", false).
func (t *TextSubstring) Text() (string, bool) {
	parts, ok := t.Reconstruct()
	if !ok {
		return "", false
	}

	return strings.Join(parts, ""), true
}

// SubsequenceOf returns the longest common subsequence of two strings,
// compared by code point, and its length in code points.
// The string is empty when the length is 0.
func SubsequenceOf(left, right string) (string, int) {
	t := &TextSubsequence{NewSubsequence(segment(left, DefaultTextOptions()), segment(right, DefaultTextOptions()))}
	s, _ := t.Text()

	return s, t.Length()
}

// SubstringOf returns the longest common substring of two strings,
// compared by code point, and its length in code points.
func SubstringOf(left, right string) (string, int) {
	t := &TextSubstring{NewSubstring(segment(left, DefaultTextOptions()), segment(right, DefaultTextOptions()))}
	s, _ := t.Text()

	return s, t.Length()
}

// segment normalizes s and cuts it into elements.
// Every element is a slice of the (normalized) input, so joining any run of
// elements yields the original bytes; an invalid UTF-8 byte becomes its own
// one-byte element instead of being rewritten to U+FFFD.
func segment(s string, o TextOptions) []string {
	switch o.Normalization {
	case NFC:
		s = norm.NFC.String(s)
	case NFD:
		s = norm.NFD.String(s)
	case NFKC:
		s = norm.NFKC.String(s)
	case NFKD:
		s = norm.NFKD.String(s)
	}

	if o.Unit == Graphemes {
		out := make([]string, 0, uniseg.GraphemeClusterCount(s))
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			out = append(out, g.Str())
		}

		return out
	}

	out := make([]string, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, s[i:i+size])
		i += size
	}

	return out
}

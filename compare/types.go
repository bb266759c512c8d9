package compare

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOptionViolation is returned when an invalid TextOption is supplied.
var ErrOptionViolation = errors.New("compare: invalid option supplied")

// MemoryMode names the storage strategy for the DP table.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) table. Allows length and
//     reconstruction. Memory: O(n·m). Used by every comparator.
//
//   - TwoRows — keep only the previous and current row. Memory O(min(n, m)),
//     but the matched elements cannot be recovered. Used by
//     SubsequenceLength and SubstringLength.
//
// MeasureSubsequence and MeasureSubstring take a MemoryMode and dispatch on it.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support reconstruction.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, length only.
	TwoRows
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// Match is one aligned pair in a common subsequence:
// left[I] == right[J].
type Match struct {
	I, J int
}

// Span locates a common substring: left[Left:Left+Len] == right[Right:Right+Len].
type Span struct {
	Left, Right, Len int
}

// Unit selects how text is split into comparable elements.
type Unit int

const (
	// Runes splits text into Unicode code points.
	Runes Unit = iota

	// Graphemes splits text into user-perceived characters (extended
	// grapheme clusters), so "e" + U+0301 stays one element.
	Graphemes
)

var unitNames = map[Unit]string{
	Runes:     "runes",
	Graphemes: "graphemes",
}

// String returns the lower-case unit name.
func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}

	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit maps a name ("runes", "graphemes") to a Unit.
func ParseUnit(name string) (Unit, error) {
	for u, s := range unitNames {
		if strings.EqualFold(s, name) {
			return u, nil
		}
	}

	return Runes, fmt.Errorf("%w: unknown unit %q", ErrOptionViolation, name)
}

// Normalization selects the Unicode normalization form applied to both
// inputs before segmentation.
type Normalization int

const (
	// NoNormalization compares the text as given.
	NoNormalization Normalization = iota
	// NFC is canonical composition.
	NFC
	// NFD is canonical decomposition.
	NFD
	// NFKC is compatibility composition.
	NFKC
	// NFKD is compatibility decomposition.
	NFKD
)

var normalizationNames = map[Normalization]string{
	NoNormalization: "none",
	NFC:             "nfc",
	NFD:             "nfd",
	NFKC:            "nfkc",
	NFKD:            "nfkd",
}

// String returns the lower-case form name.
func (n Normalization) String() string {
	if s, ok := normalizationNames[n]; ok {
		return s
	}

	return fmt.Sprintf("Normalization(%d)", int(n))
}

// ParseNormalization maps a name ("none", "nfc", "nfd", "nfkc", "nfkd")
// to a Normalization. The empty string means NoNormalization.
func ParseNormalization(name string) (Normalization, error) {
	if name == "" {
		return NoNormalization, nil
	}
	for n, s := range normalizationNames {
		if strings.EqualFold(s, name) {
			return n, nil
		}
	}

	return NoNormalization, fmt.Errorf("%w: unknown normalization %q", ErrOptionViolation, name)
}

// TextOption configures the text constructors via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by the
// constructor.
type TextOption func(*TextOptions)

// TextOptions holds the segmentation settings for text comparison.
type TextOptions struct {
	// Unit is the element granularity. Default Runes.
	Unit Unit

	// Normalization is applied to both inputs first. Default NoNormalization.
	Normalization Normalization

	// internal error recorded during option parsing
	err error
}

// DefaultTextOptions returns code-point segmentation without normalization.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Unit:          Runes,
		Normalization: NoNormalization,
	}
}

// WithUnit sets the element granularity.
func WithUnit(u Unit) TextOption {
	return func(o *TextOptions) {
		if _, ok := unitNames[u]; !ok {
			o.err = fmt.Errorf("%w: unit %d", ErrOptionViolation, int(u))
			return
		}
		o.Unit = u
	}
}

// WithNormalization sets the Unicode normalization form.
func WithNormalization(n Normalization) TextOption {
	return func(o *TextOptions) {
		if _, ok := normalizationNames[n]; !ok {
			o.err = fmt.Errorf("%w: normalization %d", ErrOptionViolation, int(n))
			return
		}
		o.Normalization = n
	}
}

// resolveTextOptions applies opts over the defaults and reports the first
// recorded violation.
func resolveTextOptions(opts []TextOption) (TextOptions, error) {
	o := DefaultTextOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}

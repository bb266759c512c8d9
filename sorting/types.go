package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when an Algorithm name or value is not recognized.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm selects one of the sort implementations.
type Algorithm int

const (
	// BubbleSort repeatedly swaps adjacent out-of-order pairs.
	BubbleSort Algorithm = iota
	// InsertionSort grows a sorted prefix one element at a time.
	InsertionSort
	// MergeSort splits, sorts halves and merges them.
	MergeSort
	// QuickSort partitions around a pivot (Lomuto, last element).
	QuickSort
)

// Algorithms lists every Algorithm in declaration order.
var Algorithms = []Algorithm{BubbleSort, InsertionSort, MergeSort, QuickSort}

var algorithmNames = map[Algorithm]string{
	BubbleSort:    "bubble",
	InsertionSort: "insertion",
	MergeSort:     "merge",
	QuickSort:     "quick",
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "bubble", "insertion", "merge" or "quick"
// (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(algorithmNames[a], name) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

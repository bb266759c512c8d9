package sorting

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
)

// Sort returns a sorted copy of s using alg. The input is not modified.
func Sort[T constraints.Ordered](alg Algorithm, s []T) ([]T, error) {
	switch alg {
	case BubbleSort:
		return Bubble(s), nil
	case InsertionSort:
		return Insertion(s), nil
	case MergeSort:
		return Merge(s), nil
	case QuickSort:
		return Quick(s), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

// SortInPlace sorts s using alg.
func SortInPlace[T constraints.Ordered](alg Algorithm, s []T) error {
	switch alg {
	case BubbleSort:
		BubbleInPlace(s)
	case InsertionSort:
		InsertionInPlace(s)
	case MergeSort:
		MergeInPlace(s)
	case QuickSort:
		QuickInPlace(s)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	return nil
}

// Timed sorts s in place with alg and returns the elapsed wall-clock time.
func Timed[T constraints.Ordered](alg Algorithm, s []T) (time.Duration, error) {
	start := time.Now()
	if err := SortInPlace(alg, s); err != nil {
		return 0, err
	}

	return time.Since(start), nil
}

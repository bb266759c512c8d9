package compare

import "github.com/katalvlaran/lvlalgo/matrix"

// newGrid allocates the DP table for inputs of length n and m.
// Both dimensions are at least 1, so NewTable only fails on a programming error.
func newGrid(n, m int) *matrix.Table {
	t, err := matrix.NewTable(n+1, m+1)
	if err != nil {
		panic(err)
	}

	return t
}

// row returns row i of t; i is always in range for callers in this package.
func row(t *matrix.Table, i int) []int {
	r, err := t.Row(i)
	if err != nil {
		panic(err)
	}

	return r
}

// cell reads t[i][j]; (i, j) is always in range for callers in this package.
func cell(t *matrix.Table, i, j int) int {
	v, err := t.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}

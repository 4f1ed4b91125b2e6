package domain

import (
	"fmt"
	"io"
)

// demoAliasing builds a grid two ways: once with every row aliasing one
// slice, once with an independent slice per row.
func demoAliasing(w io.Writer) {
	a := make([]int, 3)
	a[0] = 7
	fmt.Fprintln(w, "a := make([]int, 3); a[0] = 7 ->", a, "(this is fine)")

	// Common trap: reusing one row slice for every row.
	row := make([]int, 3)
	gridBad := [][]int{row, row, row}
	gridBad[0][0] = 9

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bad grid (every row is the same slice):")
	fmt.Fprintln(w, "gridBad:", gridBad)

	gridGood := make([][]int, 3)
	for i := range gridGood {
		gridGood[i] = make([]int, 3)
	}
	gridGood[0][0] = 9

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Good grid (independent rows):")
	fmt.Fprintln(w, "gridGood:", gridGood)
}

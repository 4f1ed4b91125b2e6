package domain

import (
	"fmt"
	"io"
	"slices"

	"gotraps.dev/pkg/gotraps/pkg"
)

// demoShallowDeepCopy shows that slices.Clone duplicates only the outer
// slice: the inner slices still share their backing arrays with the
// original. A deep copy duplicates everything.
func demoShallowDeepCopy(w io.Writer) {
	original := [][]int{{1, 2}, {3, 4}}
	shallow := slices.Clone(original) // outer slice copied, inner slices shared

	deep, err := pkg.Clone(original) // everything copied recursively
	if err != nil {
		fmt.Fprintln(w, "deep copy failed:", err)
		return
	}

	original[0][0] = 99 // mutate an inner element in place

	fmt.Fprintln(w, "original:", original)
	fmt.Fprintln(w, "shallow :", shallow, "  <-- changed too (inner slices shared)")
	fmt.Fprintln(w, "deep    :", deep, "  <-- unchanged (separate arrays)")
}

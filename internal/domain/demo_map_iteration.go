package domain

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// demoMapIteration walks through mutating a map during a range. Deleting
// entries mid-range is allowed in Go; adding entries mid-range is
// unspecified (the new entry may or may not be visited). Snapshotting the
// keys first sidesteps both questions.
func demoMapIteration(w io.Writer) {
	d := map[string]int{"a": 1, "b": 2, "c": 3}

	fmt.Fprintln(w, "Original map:", d) // fmt prints map keys sorted
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deleting inside range is safe; inserting is unspecified")
	fmt.Fprintln(w, "(a new entry may or may not be visited).")
	fmt.Fprintln(w, "Safe approach: snapshot the keys, then delete.")

	for _, k := range slices.Sorted(maps.Keys(d)) {
		if d[k]%2 == 1 {
			delete(d, k)
		}
	}

	fmt.Fprintln(w, "After deleting odd values:", d)
}

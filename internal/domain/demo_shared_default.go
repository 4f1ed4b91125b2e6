package domain

import (
	"fmt"
	"io"
)

// demoSharedDefault shows what happens when a nil parameter falls back to a
// buffer that outlives the call. The fallback is created once, so every
// caller that relies on the default appends to the same slice.
func demoSharedDefault(w io.Writer) {
	// The fallback lives outside the function, like a package-level default.
	var fallback []int

	addItemBad := func(item int, bucket []int) []int {
		if bucket == nil {
			fallback = append(fallback, item)
			return fallback
		}

		return append(bucket, item)
	}

	addItemGood := func(item int, bucket []int) []int {
		if bucket == nil {
			bucket = make([]int, 0, 1)
		}

		return append(bucket, item)
	}

	fmt.Fprintln(w, "Bad calls (the fallback buffer keeps growing across calls):")
	fmt.Fprintln(w, "addItemBad(1, nil):", addItemBad(1, nil))
	fmt.Fprintln(w, "addItemBad(2, nil):", addItemBad(2, nil))
	fmt.Fprintln(w, "addItemBad(3, nil):", addItemBad(3, nil))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Good calls (a fresh slice is allocated per call):")
	fmt.Fprintln(w, "addItemGood(1, nil):", addItemGood(1, nil))
	fmt.Fprintln(w, "addItemGood(2, nil):", addItemGood(2, nil))
	fmt.Fprintln(w, "addItemGood(3, nil):", addItemGood(3, nil))
}

package domain

import (
	"fmt"
	"io"
	"slices"
)

// demoArgMutation shows which callee mutations a caller observes. A slice
// argument copies the header but shares the backing array: element writes
// are visible to the caller, the callee's own append is not.
func demoArgMutation(w io.Writer) {
	setFirst := func(nums []int) {
		nums[0] = 999 // writes through the shared backing array
	}

	data := []int{1, 2, 3}
	setFirst(data)
	fmt.Fprintln(w, "After setFirst(data):", data, "  <-- caller data changed")

	growInside := func(nums []int) {
		nums = append(nums, 999) // only the callee's copy of the header grows
		_ = nums                 // the caller never sees this slice
	}

	data2 := []int{1, 2, 3}
	growInside(data2)
	fmt.Fprintln(w, "After growInside(data2):", data2, "  <-- append inside was lost")

	// Safe approach: leave the argument alone and return a new slice.
	data3 := []int{1, 2, 3}
	grown := append(slices.Clone(data3), 999)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Safe approach: return a new slice")
	fmt.Fprintln(w, "Original:", data3)
	fmt.Fprintln(w, "New     :", grown)
}

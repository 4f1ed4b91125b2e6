package domain

import (
	"fmt"
	"io"
)

// demoClosures shows closure capture in loops. A variable declared before
// the loop is one variable shared by every closure; a variable declared by
// the loop statement is fresh on each iteration (Go 1.22+).
func demoClosures(w io.Writer) {
	var funcsBad []func() int

	i := 0
	for ; i < 3; i++ {
		funcsBad = append(funcsBad, func() int { return i }) // all share i
	}

	fmt.Fprintln(w, "Bad closures (all share one variable, read after the loop):")
	fmt.Fprintln(w, call(funcsBad))

	var funcsGood []func() int

	for j := 0; j < 3; j++ {
		funcsGood = append(funcsGood, func() int { return j }) // j is per-iteration
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Good closures (loop-declared variable, one per iteration):")
	fmt.Fprintln(w, call(funcsGood))
}

func call(funcs []func() int) []int {
	results := make([]int, 0, len(funcs))
	for _, f := range funcs {
		results = append(results, f())
	}

	return results
}

package domain

import (
	"fmt"
	"io"
	"math"
)

// demoFloats shows the usual float64 surprises and two ways out: rounding
// for presentation, epsilon comparison for logic.
func demoFloats(w io.Writer) {
	// The sum must happen at runtime: the constant expression 0.1 + 0.2
	// folds at compile time with arbitrary precision and lands on the
	// float64 nearest 0.3, hiding the very error this demonstrates.
	a, b := 0.1, 0.2
	sum := a + b

	fmt.Fprintln(w, "0.1 + 0.2 =", sum)
	fmt.Fprintln(w, "0.1 + 0.2 == 0.3 ?", sum == 0.3)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Round to 2 decimals:", math.Round(sum*100)/100)
	fmt.Fprintln(w, "Compare with an epsilon:", math.Abs(sum-0.3) < 1e-9)
}

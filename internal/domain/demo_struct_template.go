package domain

import (
	"fmt"
	"io"
)

type basket struct {
	Items []int
}

// demoStructTemplate shows the record-default trap: assigning a struct
// copies its slice headers, not the arrays behind them, so "instances"
// stamped from one template share mutable state. A constructor that
// allocates per instance avoids it.
func demoStructTemplate(w io.Writer) {
	template := basket{Items: make([]int, 3)}

	b1 := template // copies the header, not the array
	b2 := template
	b1.Items[0] = 1

	fmt.Fprintln(w, "b1 := template; b2 := template; b1.Items[0] = 1")
	fmt.Fprintln(w, "b1.Items:", b1.Items)
	fmt.Fprintln(w, "b2.Items:", b2.Items, "  <-- oops, shared backing array!")

	newBasket := func() basket {
		return basket{Items: make([]int, 3)}
	}

	g1 := newBasket()
	g2 := newBasket()
	g1.Items[0] = 1

	fmt.Fprintln(w)
	fmt.Fprintln(w, "g1 := newBasket(); g2 := newBasket(); g1.Items[0] = 1")
	fmt.Fprintln(w, "g1.Items:", g1.Items)
	fmt.Fprintln(w, "g2.Items:", g2.Items, "  <-- separate arrays")
}

package domain

import (
	"fmt"
	"io"
)

type point struct{ X, Y int }

// demoIdentity contrasts value equality with pointer identity. Whether two
// equal composite literals end up at the same address is an implementation
// detail, so nothing here is decided by comparing addresses to each other
// except through ==.
func demoIdentity(w io.Writer) {
	p := &point{1, 2}
	q := &point{1, 2}

	fmt.Fprintln(w, "p := &point{1, 2}; q := &point{1, 2}")
	fmt.Fprintln(w, "*p == *q:", *p == *q) // values equal
	fmt.Fprintln(w, "p == q  :", p == q)   // distinct allocations

	r := p
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Aliases of one allocation compare equal:")
	fmt.Fprintln(w, "r := p; p == r:", p == r)

	var missing *point
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Correct nil check uses ==:")
	fmt.Fprintln(w, "missing == nil:", missing == nil)

	// The classic interface twist: a nil pointer stored in an interface
	// makes the interface itself non-nil.
	var tp *point
	var boxed any = tp

	fmt.Fprintln(w)
	fmt.Fprintln(w, "An interface holding a typed nil is not nil:")
	fmt.Fprintln(w, "var tp *point; var boxed any = tp")
	fmt.Fprintln(w, "tp == nil   :", tp == nil)
	fmt.Fprintln(w, "boxed == nil:", boxed == nil, "  <-- the interface carries a type")
}

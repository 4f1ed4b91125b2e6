// Package domain holds the pitfall demonstrations and the machinery that
// runs them in their fixed order.
package domain

import (
	"io"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// DemoFunc renders one complete demonstration (header, bad passage, good
// passage) to w. Demonstrations are pure: no state survives a call and the
// written bytes are identical on every invocation.
type DemoFunc func(w io.Writer)

// Registry exposes the demonstrations in their fixed run order.
type Registry interface {
	// All returns the demo descriptors in run order.
	All() []m.Demo
	// Lookup finds a demo and its render function by slug.
	Lookup(slug m.Slug) (m.Demo, DemoFunc, bool)
}

type entry struct {
	demo m.Demo
	run  DemoFunc
}

type registry struct {
	entries []entry
}

// NewRegistry creates the registry of the ten demonstrations.
func NewRegistry() Registry {
	return &registry{entries: []entry{
		{
			demo: m.Demo{Slug: "shared-default", Number: 1, Title: "Shared Fallback Buffer Trap", Topic: "nil parameters backed by shared package state"},
			run:  demoSharedDefault,
		},
		{
			demo: m.Demo{Slug: "identity", Number: 2, Title: "Equality vs Identity", Topic: "== on values, pointers, and interfaces"},
			run:  demoIdentity,
		},
		{
			demo: m.Demo{Slug: "shallow-deep", Number: 3, Title: "Shallow Copy vs Deep Copy", Topic: "slices.Clone copies only the outer slice"},
			run:  demoShallowDeepCopy,
		},
		{
			demo: m.Demo{Slug: "aliasing", Number: 4, Title: "Slice Aliasing Trap", Topic: "grid rows sharing one backing array"},
			run:  demoAliasing,
		},
		{
			demo: m.Demo{Slug: "broad-errors", Number: 5, Title: "Swallowing Errors Too Broadly", Topic: "errors.Is versus discarding every error"},
			run:  demoBroadErrors,
		},
		{
			demo: m.Demo{Slug: "closures", Number: 6, Title: "Closure Capture in Loops", Topic: "shared loop variables versus per-iteration ones"},
			run:  demoClosures,
		},
		{
			demo: m.Demo{Slug: "map-iteration", Number: 7, Title: "Mutating a Map While Iterating", Topic: "delete is safe, insert is unspecified"},
			run:  demoMapIteration,
		},
		{
			demo: m.Demo{Slug: "floats", Number: 8, Title: "Float Precision", Topic: "0.1 + 0.2 and friends"},
			run:  demoFloats,
		},
		{
			demo: m.Demo{Slug: "struct-template", Number: 9, Title: "Struct Template Trap", Topic: "copying a struct copies slice headers, not arrays"},
			run:  demoStructTemplate,
		},
		{
			demo: m.Demo{Slug: "arg-mutation", Number: 10, Title: "Mutating Arguments In-Place", Topic: "callee writes visible to the caller"},
			run:  demoArgMutation,
		},
	}}
}

func (r *registry) All() []m.Demo {
	demos := make([]m.Demo, 0, len(r.entries))
	for _, e := range r.entries {
		demos = append(demos, e.demo)
	}

	return demos
}

func (r *registry) Lookup(slug m.Slug) (m.Demo, DemoFunc, bool) {
	for _, e := range r.entries {
		if e.demo.Slug == slug {
			return e.demo, e.run, true
		}
	}

	return m.Demo{}, nil, false
}

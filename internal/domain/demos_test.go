package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// Each demo's transcript is part of the program contract: given no input the
// output is an exact, fixed sequence of lines.
func TestDemos_ExactTranscripts(t *testing.T) {
	tests := []struct {
		slug m.Slug
		want string
	}{
		{
			slug: "shared-default",
			want: `
--- 1) Shared Fallback Buffer Trap ---
Bad calls (the fallback buffer keeps growing across calls):
addItemBad(1, nil): [1]
addItemBad(2, nil): [1 2]
addItemBad(3, nil): [1 2 3]

Good calls (a fresh slice is allocated per call):
addItemGood(1, nil): [1]
addItemGood(2, nil): [2]
addItemGood(3, nil): [3]
`,
		},
		{
			slug: "identity",
			want: `
--- 2) Equality vs Identity ---
p := &point{1, 2}; q := &point{1, 2}
*p == *q: true
p == q  : false

Aliases of one allocation compare equal:
r := p; p == r: true

Correct nil check uses ==:
missing == nil: true

An interface holding a typed nil is not nil:
var tp *point; var boxed any = tp
tp == nil   : true
boxed == nil: false   <-- the interface carries a type
`,
		},
		{
			slug: "shallow-deep",
			want: `
--- 3) Shallow Copy vs Deep Copy ---
original: [[99 2] [3 4]]
shallow : [[99 2] [3 4]]   <-- changed too (inner slices shared)
deep    : [[1 2] [3 4]]   <-- unchanged (separate arrays)
`,
		},
		{
			slug: "aliasing",
			want: `
--- 4) Slice Aliasing Trap ---
a := make([]int, 3); a[0] = 7 -> [7 0 0] (this is fine)

Bad grid (every row is the same slice):
gridBad: [[9 0 0] [9 0 0] [9 0 0]]

Good grid (independent rows):
gridGood: [[9 0 0] [0 0 0] [0 0 0]]
`,
		},
		{
			slug: "broad-errors",
			want: `
--- 5) Swallowing Errors Too Broadly ---
parseIntBad("123") : 123
parseIntBad("abc") : 0
parseIntBad("99999999999999999999"): 0   <-- overflow silently became zero

parseIntGood("123"): 123, err=<nil>
parseIntGood("abc"): 0, err=<nil>
parseIntGood("99999999999999999999"): err=strconv.Atoi: parsing "99999999999999999999": value out of range
`,
		},
		{
			slug: "closures",
			want: `
--- 6) Closure Capture in Loops ---
Bad closures (all share one variable, read after the loop):
[3 3 3]

Good closures (loop-declared variable, one per iteration):
[0 1 2]
`,
		},
		{
			slug: "map-iteration",
			want: `
--- 7) Mutating a Map While Iterating ---
Original map: map[a:1 b:2 c:3]

Deleting inside range is safe; inserting is unspecified
(a new entry may or may not be visited).
Safe approach: snapshot the keys, then delete.
After deleting odd values: map[b:2]
`,
		},
		{
			slug: "floats",
			want: `
--- 8) Float Precision ---
0.1 + 0.2 = 0.30000000000000004
0.1 + 0.2 == 0.3 ? false

Round to 2 decimals: 0.3
Compare with an epsilon: true
`,
		},
		{
			slug: "struct-template",
			want: `
--- 9) Struct Template Trap ---
b1 := template; b2 := template; b1.Items[0] = 1
b1.Items: [1 0 0]
b2.Items: [1 0 0]   <-- oops, shared backing array!

g1 := newBasket(); g2 := newBasket(); g1.Items[0] = 1
g1.Items: [1 0 0]
g2.Items: [0 0 0]   <-- separate arrays
`,
		},
		{
			slug: "arg-mutation",
			want: `
--- 10) Mutating Arguments In-Place ---
After setFirst(data): [999 2 3]   <-- caller data changed
After growInside(data2): [1 2 3]   <-- append inside was lost

Safe approach: return a new slice
Original: [1 2 3]
New     : [1 2 3 999]
`,
		},
	}

	runner := NewRunner(NewRegistry())

	for _, tt := range tests {
		t.Run(string(tt.slug), func(t *testing.T) {
			transcript, err := runner.Render(context.Background(), tt.slug)
			require.NoError(t, err)
			assert.Equal(t, tt.want, transcript.Text)
		})
	}
}

// Rendering twice must be byte-identical even for the demos built around
// shared state; nothing may leak between calls.
func TestDemos_StatelessAcrossCalls(t *testing.T) {
	runner := NewRunner(NewRegistry())

	for _, demo := range NewRegistry().All() {
		first, err := runner.Render(context.Background(), demo.Slug)
		require.NoError(t, err)

		second, err := runner.Render(context.Background(), demo.Slug)
		require.NoError(t, err)

		assert.Equal(t, first.Text, second.Text, "demo %q leaks state", demo.Slug)
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

func TestNewRegistry_TenDemosInOrder(t *testing.T) {
	registry := NewRegistry()
	demos := registry.All()

	require.Len(t, demos, 10)

	for i, demo := range demos {
		assert.Equal(t, i+1, demo.Number, "demo %q", demo.Slug)
		assert.NotEmpty(t, demo.Title)
		assert.NotEmpty(t, demo.Topic)
	}
}

func TestNewRegistry_UniqueSlugs(t *testing.T) {
	registry := NewRegistry()

	seen := make(map[m.Slug]bool)
	for _, demo := range registry.All() {
		assert.False(t, seen[demo.Slug], "duplicate slug %q", demo.Slug)
		seen[demo.Slug] = true
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry()

	demo, run, ok := registry.Lookup("closures")
	require.True(t, ok)
	assert.Equal(t, 6, demo.Number)
	assert.NotNil(t, run)

	_, _, ok = registry.Lookup("no-such-demo")
	assert.False(t, ok)
}

func TestRegistry_AllIsACopy(t *testing.T) {
	registry := NewRegistry()

	first := registry.All()
	first[0].Slug = "tampered"

	second := registry.All()
	assert.Equal(t, m.Slug("shared-default"), second[0].Slug)
}

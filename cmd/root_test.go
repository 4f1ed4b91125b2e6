package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "gotraps", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_BareInvocationPrintsTranscript(t *testing.T) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "\n--- 1) Shared Fallback Buffer Trap ---\n"))
	assert.Contains(t, output, "--- 10) Mutating Arguments In-Place ---")
	assert.Contains(t, output, "0.30000000000000004")
}

func TestRootCmd_BareInvocationIsDeterministic(t *testing.T) {
	render := func() string {
		cmd := newRootCmd()
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())

		return out.String()
	}

	assert.Equal(t, render(), render())
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"-h"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "Demos are addressed by slug")
}

func TestParseSlugs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Slug
	}{
		{"empty", []string{}, []m.Slug{}},
		{"single", []string{"closures"}, []m.Slug{m.Slug("closures")}},
		{
			"multiple",
			[]string{"closures", "floats", "aliasing"},
			[]m.Slug{m.Slug("closures"), m.Slug("floats"), m.Slug("aliasing")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSlugs(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, registry)
	assert.NotNil(t, runner)
	assert.NotNil(t, transcripts)
}

// Package controller provides output adapters for displaying demonstrations.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// UI defines the interface for presenting demos and transcripts.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// ListDemos renders the demo catalog as a table.
	ListDemos(demos []m.Demo)
	// Transcript writes a rendered transcript verbatim.
	Transcript(text string)
	// DriftReport presents a unified diff between a recorded transcript
	// and the current one.
	DriftReport(diff string)
	// Infof writes a formatted status line.
	Infof(format string, args ...any)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI creates the default UI for a command. The tty flag controls whether
// styled output is used.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// TUI implements a Bubble Tea pager for browsing a demo transcript.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// ShowTranscript displays a single demo transcript. Outside a terminal the
// transcript is printed as-is, so redirected output stays plain text.
func (p *TUI) ShowTranscript(transcript m.Transcript) error {
	f, isFile := p.output.(*os.File)
	if !isFile || !IsTTY(f) {
		_, err := fmt.Fprint(p.output, transcript.Text)
		return err
	}

	model := newTranscriptModel(transcript)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// transcriptModel is the Bubble Tea model for paging through one transcript.
type transcriptModel struct {
	transcript m.Transcript
	viewport   viewport.Model
	ready      bool
	quitting   bool
}

func newTranscriptModel(transcript m.Transcript) transcriptModel {
	return transcriptModel{transcript: transcript}
}

func (tm transcriptModel) Init() tea.Cmd {
	return nil
}

func (tm transcriptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1

		if !tm.ready {
			tm.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			tm.viewport.SetContent(strings.TrimPrefix(tm.transcript.Text, "\n"))
			tm.ready = true
		} else {
			tm.viewport.Width = msg.Width
			tm.viewport.Height = msg.Height - headerHeight - footerHeight
		}

		return tm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			tm.quitting = true
			return tm, tea.Quit
		}
	}

	var cmd tea.Cmd
	tm.viewport, cmd = tm.viewport.Update(msg)

	return tm, cmd
}

func (tm transcriptModel) View() string {
	if tm.quitting {
		return ""
	}

	if !tm.ready {
		return "loading..."
	}

	header := titleStyle.Render(fmt.Sprintf(
		"%d) %s", tm.transcript.Demo.Number, tm.transcript.Demo.Title,
	))
	footer := statusStyle.Render("q to quit  •  ↑/↓ to scroll")

	return header + "\n\n" + tm.viewport.View() + "\n" + footer
}

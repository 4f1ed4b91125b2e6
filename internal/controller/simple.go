package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
	tty bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, tty bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, tty: tty}
}

// ListDemos renders the demo catalog as a table.
func (s *SimpleUI) ListDemos(demos []m.Demo) {
	if s.tty {
		s.printf("%s\n", titleStyle.Render("Pitfall demonstrations"))
	}

	s.printf("%s", renderDemoTable(demos))
}

func renderDemoTable(demos []m.Demo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Demo", "Topic"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, demo := range demos {
		table.Append([]string{
			fmt.Sprintf("%d", demo.Number),
			string(demo.Slug),
			demo.Topic,
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", len(demos)), ""})
	table.Render()

	return tableBuffer.String()
}

// Transcript writes a rendered transcript verbatim.
func (s *SimpleUI) Transcript(text string) {
	s.printf("%s", text)
}

// DriftReport presents the diff between recorded and current transcripts.
func (s *SimpleUI) DriftReport(diff string) {
	s.printf("Transcript drift detected:\n\n%s", diff)
}

// Infof writes a formatted status line.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.printf(format+"\n", args...)
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

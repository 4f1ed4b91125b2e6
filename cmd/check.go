package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// ErrTranscriptDrift is returned when the current transcript differs from
// the recorded one.
var ErrTranscriptDrift = errors.New("transcript drift")

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the transcript against the recorded one",
		Long: `Re-render all demonstrations and compare the transcript with the recorded
reference. Exits non-zero and prints a unified diff when they differ.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := m.Path(viper.GetString(outputFlagName))

			recorded, err := transcripts.Load(path)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := runner.RunAll(cmd.Context(), &buf); err != nil {
				return err
			}

			current := buf.String()
			if current == recorded {
				ui.Infof("Transcript matches %s", path)
				return nil
			}

			diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(recorded),
				B:        difflib.SplitLines(current),
				FromFile: string(path),
				ToFile:   "current",
				Context:  3,
			})
			if err != nil {
				return fmt.Errorf("failed to diff transcripts: %w", err)
			}

			ui.DriftReport(diff)

			return fmt.Errorf("%w: current output differs from %s", ErrTranscriptDrift, path)
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "gotraps.dev/pkg/gotraps/internal/model"
)

// recordCmd represents the record command.
var recordCmd = newRecordCmd()

func newRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Record the reference transcript",
		Long:  "Render all demonstrations and save the transcript for later drift checks.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := m.Path(viper.GetString(outputFlagName))

			var buf bytes.Buffer
			if err := runner.RunAll(cmd.Context(), &buf); err != nil {
				return err
			}

			if err := transcripts.Save(path, buf.String()); err != nil {
				return err
			}

			ui.Infof("Recorded %d demos to %s", len(registry.All()), path)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

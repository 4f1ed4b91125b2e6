package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runParallelFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [demos...]",
		Short: "Run demonstrations",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			threads := viper.GetInt(runParallelConfigKey)

			// Selected demos always render sequentially; parallel
			// rendering only pays off for the full set.
			if len(args) > 0 || threads <= 1 {
				return runner.Run(cmd.Context(), cmd.OutOrStdout(), parseSlugs(args)...)
			}

			rendered, err := runner.RenderAll(cmd.Context(), threads)
			if err != nil {
				return err
			}

			for _, transcript := range rendered {
				ui.Transcript(transcript.Text)
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for rendering")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}

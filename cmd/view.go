package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gotraps.dev/pkg/gotraps/internal/controller"
	m "gotraps.dev/pkg/gotraps/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <demo>",
		Short: "Browse one demonstration in a pager",
		Long:  "Render a single demonstration and browse its transcript interactively.\n\n" + demoArgsHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, err := runner.Render(cmd.Context(), m.Slug(args[0]))
			if err != nil {
				return err
			}

			return controller.NewTUI(os.Stdout).ShowTranscript(transcript)
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

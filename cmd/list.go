package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List demonstrations",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			demos := registry.All()

			switch listFormatFlag {
			case "table":
				ui.ListDemos(demos)
				return nil
			case "yaml":
				out, err := yaml.Marshal(demos)
				if err != nil {
					return fmt.Errorf("failed to marshal demo list: %w", err)
				}

				fmt.Fprint(cmd.OutOrStdout(), string(out))

				return nil
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", listFormatFlag)
			}
		},
	}

	cmd.Flags().StringVarP(&listFormatFlag, listFormatFlagName, "f", "table", "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// Package cmd provides the root command and CLI setup for gotraps.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gotraps.dev/pkg/gotraps/internal/adapter"
	"gotraps.dev/pkg/gotraps/internal/controller"
	"gotraps.dev/pkg/gotraps/internal/domain"
	m "gotraps.dev/pkg/gotraps/internal/model"
)

var registry domain.Registry
var runner domain.Runner
var transcripts adapter.TranscriptStore
var ui controller.UI

// transcriptFileFlag is a root-level flag shared by commands that read/write
// recorded transcripts.
var transcriptFileFlag string

// verboseFlag raises the log level to debug when set.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	registry = domain.NewRegistry()
	runner = domain.NewRunner(registry)
	transcripts = adapter.NewTranscriptStore()
}

const demoArgsHelp = `Demos are addressed by slug (see "gotraps list"), e.g.:
  - closures        closure capture in loops
  - shallow-deep    shallow copy vs deep copy
  - floats          float precision surprises`

const rootLongDescription = `gotraps demonstrates common Go semantics pitfalls through paired bad/good
examples with printed output: shared fallback buffers, equality vs identity,
shallow vs deep copies, slice aliasing, swallowed errors, closure capture,
map mutation during iteration, float precision, struct templates, and
in-place argument mutation.

Invoked without arguments it prints all ten demonstrations in fixed order.

` + demoArgsHelp

const runLongDescription = `Run the selected demonstrations (default: all ten, in fixed order).

` + demoArgsHelp

const listLongDescription = `List the demonstrations with their run order and topics.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gotraps",
		Short: "Go semantics pitfalls, demonstrated",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runner.RunAll(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&transcriptFileFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"file used by record/check for the reference transcript",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseSlugs(args []string) []m.Slug {
	slugs := make([]m.Slug, 0, len(args))
	for _, arg := range args {
		slugs = append(slugs, m.Slug(arg))
	}

	return slugs
}

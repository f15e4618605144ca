package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <module> [paths...]",
		Short: "Show the functions, classes and findings of a module",
		Long: `Show every function and class a module declares together with the
hazards found in it. Paths default to --source, then the current directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Show(context.Background(), domain.ShowArgs{
				SourceArgs: corpusArgs(args[1:]),
				Module:     args[0],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// corpusArgs falls back to the configured source paths when none are given.
func corpusArgs(paths []string) domain.SourceArgs {
	if len(paths) == 0 {
		paths = viper.GetStringSlice(sourceConfigKey)
	}

	return sourceArgs(paths)
}

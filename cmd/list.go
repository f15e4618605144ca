package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List stub modules",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(context.Background(), domain.ListArgs{
				SourceArgs: sourceArgs(args),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}

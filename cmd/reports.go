package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

// reportsCmd represents the reports command.
var reportsCmd = newReportsCmd()

func newReportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Show saved check reports",
		Long:  "Display the reports written by the last check run from the --output directory.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Reports(context.Background(), domain.ReportsArgs{
				Reports: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

var checkParallelFlag int
var checkShardFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Verify stub modules",
		Long:  checkLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(checkShardFlag)

			return workflow.Check(context.Background(), domain.CheckArgs{
				SourceArgs:      sourceArgs(args),
				Reports:         m.Path(viper.GetString(outputFlagName)),
				Threads:         viper.GetInt(checkParallelConfigKey),
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&checkParallelFlag, checkParallelFlagName, "p", viper.GetInt(checkParallelConfigKey), "number of parallel workers for verification")
	bindFlagToConfig(cmd.Flags().Lookup(checkParallelFlagName), checkParallelConfigKey)
	cmd.Flags().StringVar(&checkShardFlag, checkShardFlagName, "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
)

// callCmd represents the call command.
var callCmd = newCallCmd()

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <module> <function> [args...]",
		Short: "Call a stub function",
		Long: `Call a free function of a stub module. Arguments are parsed against the
parameter annotations: lists and dicts as YAML flow literals ([a, b], {k: 1}),
datetimes as RFC3339 or "2006-01-02 15:04:05", UUIDs in canonical form.

Modules are looked up in --source (default: current directory).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Call(context.Background(), domain.CallArgs{
				SourceArgs: corpusArgs(nil),
				Module:     args[0],
				Function:   args[1],
				Args:       args[2:],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(callCmd)
}

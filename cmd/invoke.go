package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
)

// invokeCmd represents the invoke command.
var invokeCmd = newInvokeCmd()

func newInvokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <module> <class> <field> <method> [args...]",
		Short: "Construct a stub class and invoke one of its methods",
		Long: `Construct a class of a stub module with the given field value and invoke
a method on the instance. The field is parsed against the constructor
annotation, method arguments against the method's parameters.

Modules are looked up in --source (default: current directory).`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Invoke(context.Background(), domain.InvokeArgs{
				SourceArgs: corpusArgs(nil),
				Module:     args[0],
				Class:      args[1],
				Field:      args[2],
				Method:     args[3],
				Args:       args[4:],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}

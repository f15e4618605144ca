// Package cmd provides the root command and CLI setup for stubcorpus.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"stubcorpus.dev/pkg/stubcorpus/internal/adapter"
	"stubcorpus.dev/pkg/stubcorpus/internal/controller"
	"stubcorpus.dev/pkg/stubcorpus/internal/domain"
	m "stubcorpus.dev/pkg/stubcorpus/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var stubParser adapter.StubParser
var moduleSource adapter.ModuleSource
var reportStore adapter.ReportStore
var verifier domain.Verifier
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// sourcePatterns is where call, invoke and show look for modules.
var sourcePatterns []string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	stubParser = adapter.NewTreeSitterStubParser()
	moduleSource = adapter.NewLocalModuleSource(fsAdapter, stubParser)
	reportStore = adapter.NewYAMLReportStore(fsAdapter)
	verifier = domain.NewVerifier()
	workflow = domain.NewWorkflow(
		moduleSource,
		reportStore,
		ui,
		verifier,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./repo/...     recursively scan repo directory
  - ./a ./b        scan multiple directories (no recursion)
  - module.py      a single stub file`

const rootLongDescription = `Stubcorpus loads synthetic stub modules, runs their functions and
methods with the semantics they are written with, verifies the properties
every stub must hold and reports the structural hazards they carry.

` + pathPatternsHelp

const listLongDescription = `List stub modules with their function, class and finding counts.

` + pathPatternsHelp

const checkLongDescription = `Verify every stub of the given paths (default: current directory).

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "stubcorpus",
		Short:         "Stub corpus runtime and checker",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for check reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&sourcePatterns, sourceFlagName, "s", viper.GetStringSlice(sourceConfigKey), "corpus paths used by show, call and invoke (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourceFlagName), sourceConfigKey)

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

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func sourceArgs(paths []string) domain.SourceArgs {
	return domain.SourceArgs{
		Paths:   parsePaths(paths),
		Exclude: viper.GetStringSlice(excludeConfigKey),
	}
}

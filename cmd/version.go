package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stubcorpus build",
		Long:  "Prints the stubcorpus module version, the VCS revision it was built from and the Go toolchain.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()

			for _, line := range buildLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// buildLines describes a build. Unstamped builds report "(devel)".
func buildLines(info *debug.BuildInfo) []string {
	if info == nil {
		return []string{"stubcorpus (unknown build)"}
	}

	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	lines := []string{fmt.Sprintf("stubcorpus %s", version)}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if revision != "" {
		if modified == "true" {
			revision += " (dirty)"
		}

		lines = append(lines, "revision "+revision)
	}

	return append(lines, "go "+info.GoVersion)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), versionString(info))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionString renders the module version and VCS stamp recorded by the
// go tool. info may be nil when the binary carries no build information.
func versionString(info *debug.BuildInfo) string {
	if info == nil {
		return "confread (devel)"
	}

	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	var vcs []string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			vcs = append(vcs, "commit "+s.Value[:min(12, len(s.Value))])
		case "vcs.time":
			vcs = append(vcs, "built "+s.Value)
		case "vcs.modified":
			if s.Value == "true" {
				vcs = append(vcs, "dirty")
			}
		}
	}

	line := "confread " + version + " " + info.GoVersion
	if len(vcs) > 0 {
		line += " (" + strings.Join(vcs, ", ") + ")"
	}
	return line
}

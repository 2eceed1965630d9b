package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the launchdash version, the commit it was built from and the
Go toolchain and platform.

When no commit was stamped with ldflags, the VCS revision recorded by the Go
toolchain is shown instead.`,
	Run: runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false,
		"Print only the version number")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	if versionShort {
		cmd.Println(Version)
		return
	}

	cmd.Printf("launchdash version %s\n", Version)
	cmd.Printf("  Commit: %s\n", buildCommit(Commit, debug.ReadBuildInfo))
	cmd.Printf("  Go version: %s\n", runtime.Version())
	cmd.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// buildCommit prefers the ldflags commit, then the vcs.revision build
// setting, shortened to 12 characters.
func buildCommit(stamped string, readInfo func() (*debug.BuildInfo, bool)) string {
	if stamped != "" && stamped != "unknown" {
		return stamped
	}

	info, ok := readInfo()
	if !ok {
		return stamped
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value[:min(12, len(s.Value))]
		}
	}
	return stamped
}

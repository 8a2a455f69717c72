// ABOUTME: Version command printing build and runtime information
// ABOUTME: Version fields are injected from main at build time
package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

const appName = "research"

var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
}

// VersionInfo contains build information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// String renders the one-line form, e.g. "research 1.2.3 (abc123)"
func (v VersionInfo) String() string {
	return fmt.Sprintf("%s %s (%s)", appName, v.Version, v.Commit)
}

// SetVersion sets the version information (called from main)
func SetVersion(version, commit, date string) {
	versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Print the research assistant's version, commit, build date and Go runtime.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, versionInfo.String())
			fmt.Fprintf(out, "  built: %s\n", versionInfo.Date)
			fmt.Fprintf(out, "  go:    %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}

	return cmd
}

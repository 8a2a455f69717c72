// ABOUTME: Entry point for the research assistant CLI
// ABOUTME: Injects build info and maps command errors to exit status 1
package main

import (
	"fmt"
	"os"

	"github.com/harper/research/cmd/research/commands"
)

// Set by goreleaser via -ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func run() int {
	commands.SetVersion(version, commit, date)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}

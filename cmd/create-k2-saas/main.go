package main

import (
	"os"

	"github.com/k2-saas/create-k2-saas/internal/cli/commands"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

func main() {
	commands.Version = Version
	commands.GitCommit = GitCommit
	commands.BuildDate = BuildDate
	commands.GoVersion = GoVersion

	// Errors are printed by Execute
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

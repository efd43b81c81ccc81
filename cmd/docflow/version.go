package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docflow %s\n", version)
		fmt.Printf("  Go:     %s\n", runtime.Version())
		fmt.Printf("  Commit: %s\n", commit)
		fmt.Printf("  Date:   %s\n", date)
	},
}

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roomwalk/internal/telemetry"
)

var (
	// Version is set with -ldflags at build time.
	Version = "dev"
	// Commit is set with -ldflags at build time.
	Commit = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the roomwalk version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roomwalk %s (commit %s)\n", Version, Commit)
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	if Version != "dev" {
		telemetry.Version = Version
	}
}

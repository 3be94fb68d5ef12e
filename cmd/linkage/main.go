// Package main provides the linkage CLI.
//
// Usage:
//
//	linkage [flags] <command> [args]
//
// Commands:
//
//	run     - cluster a point file and report the metrics
//	gen     - write a random point file
//	version - print the version
package main

import (
	"fmt"
	"os"

	"github.com/TrevorS/linkage/cmd/linkage/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

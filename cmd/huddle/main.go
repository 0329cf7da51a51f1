// Package main is the entry point for the huddle CLI/TUI.
package main

import (
	"os"

	"github.com/huddle-sh/huddle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

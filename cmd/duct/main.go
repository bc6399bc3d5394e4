// Package main is the entry point for the duct CLI.
package main

import (
	"os"

	"github.com/runger/duct/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

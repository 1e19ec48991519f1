// Package main is the entry point for the plate-quote CLI.
package main

import (
	"os"

	"plate-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the entry point for the speller CLI.
package main

import (
	"os"

	"github.com/milden6/dictionary/cmd/speller/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the CLI entry point for linechart.
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	cmd := newRootCmd(afero.NewOsFs())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

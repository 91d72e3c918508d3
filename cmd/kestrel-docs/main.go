package main

import (
	"os"

	"github.com/simonhull/kestrel/fledge/output"
	"github.com/simonhull/kestrel/internal/commands"
)

func main() {
	if err := commands.DocsRootCmd().Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}

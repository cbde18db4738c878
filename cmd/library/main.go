package main

import (
	"os"

	"github.com/idilsaglam/library/internal/cli"
)

func main() {
	// Flags, config and the interactive session all live behind the runner;
	// it hands back the exit code (0 ok, 1 error, 2 usage).
	os.Exit(cli.Run(os.Args, cli.Options{}))
}

package main

import (
	"os"

	"github.com/iisyw/OGit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

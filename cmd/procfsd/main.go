package main

import (
	"fmt"
	"os"

	"github.com/procfsd/procfsd/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "procfsd: %s\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

package main

import (
	"os"
	"runtime"

	"github.com/Aatka-Saleem/DeployFlow/cmd/deployflow/cli"
	"github.com/Aatka-Saleem/DeployFlow/internal"
)

var (
	version        = internal.NotProvided
	gitCommit      = internal.NotProvided
	buildDate      = internal.NotProvided
	gitDescription = internal.NotProvided
)

func main() {
	internal.SetBuildInfo(version, gitCommit, buildDate, gitDescription, runtime.Version())

	app := cli.Application()

	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}

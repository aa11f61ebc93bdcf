// Package main is the entry point for the datagrid CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rshade/datagrid/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Overridden by the linker.

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.NewRootCmd(version).ExecuteContext(ctx)
	return cli.ExitCode(err)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/apuntes/internal/adapters/driving/cli"
)

// Version is injected at build time.
var Version = "dev"

func main() {
	runMain(os.Args, os.Exit)
}

func runMain(args []string, exit func(int)) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(Version)
	cli.SetBootstrap(newServices)

	if err := cli.Execute(ctx, args[1:]); err != nil {
		stop()
		exit(1)
	}
}

// Package main is the entry point for the svnrevert command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chmouel/svnrevert/internal/bootstrap"
	"github.com/chmouel/svnrevert/internal/buildinfo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date, builtBy)
	buildinfo.Enrich()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := bootstrap.Main(ctx, os.Args, bootstrap.OSStreams())
	stop()
	os.Exit(code)
}

// Package main provides the entry point for the planconfig CLI.
package main

import (
	"context"
	"os"

	"github.com/goliatone/go-planconfig/cmd/planconfig/app"
)

// Version information populated at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	application, err := app.New(version, commit)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}

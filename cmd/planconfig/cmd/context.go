// Package cmd holds the planconfig subcommands. Commands depend on the
// Context interface rather than the concrete app so they can be tested with
// a stub.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-planconfig/internal/prompt"
	"github.com/goliatone/go-planconfig/pkg/figma"
	"github.com/goliatone/go-planconfig/pkg/reconcile"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// Context is what commands need from the application.
type Context interface {
	Logger() *zerolog.Logger
	Prompter() prompt.Driver
	NoColor() bool

	DefaultPlanType() string
	StorePath() string

	FigmaClient() *figma.Client
	SetFigmaToken(token string)

	EngineOptions() []reconcile.Option
	SetEngineFlags(suggestions int, orphans bool)

	LoaderOptions() []sources.LoaderOption
}

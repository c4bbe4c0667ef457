// Package planconfig generates insurance plan field configuration by
// reconciling a design extract with DB mapping, validation and formula
// uploads. Most callers need only Generate or NewOrchestrator.
package planconfig

import (
	"context"

	internalLoader "github.com/goliatone/go-planconfig/internal/loader"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/orchestrator"
	"github.com/goliatone/go-planconfig/pkg/reconcile"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// Request aliases orchestrator.Request for callers using the root package.
type Request = orchestrator.Request

// Result aliases reconcile.Result.
type Result = reconcile.Result

// ErrNoDesignFields is returned when no design fields were supplied.
var ErrNoDesignFields = reconcile.ErrNoDesignFields

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a source loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...sources.LoaderOption) sources.Loader {
	return internalLoader.New(sources.NewLoaderOptions(options...))
}

// Generate reconciles an already-decoded bundle for planType using the
// default engine and no decorators.
func Generate(ctx context.Context, planType model.PlanType, bundle sources.Bundle, options ...orchestrator.Option) (*Result, error) {
	return orchestrator.New(options...).Generate(ctx, Request{
		PlanType: planType,
		Bundle:   &bundle,
	})
}

// GenerateFiles loads the named files from disk and reconciles them.
// Empty paths are skipped; design is required.
func GenerateFiles(ctx context.Context, planType model.PlanType, design, dbMapping, validations, formulas string, options ...orchestrator.Option) (*Result, error) {
	return orchestrator.New(options...).Generate(ctx, Request{
		PlanType:    planType,
		Design:      fileSource(design),
		DBMapping:   fileSource(dbMapping),
		Validations: fileSource(validations),
		Formulas:    fileSource(formulas),
	})
}

func fileSource(path string) sources.Source {
	if path == "" {
		return nil
	}
	return sources.SourceFromFile(path)
}

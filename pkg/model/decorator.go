package model

import "github.com/goliatone/go-planconfig/pkg/diagnostic"

// Decorator enriches generated configuration records after reconciliation,
// e.g. attaching options or API lookups from an overlay document.
type Decorator interface {
	Decorate(*Config) error
}

// DiagnosticDecorator is a Decorator that can also report advisory
// diagnostics. Callers holding a collector prefer DecorateWithDiagnostics.
type DiagnosticDecorator interface {
	Decorator
	DecorateWithDiagnostics(*Config, *diagnostic.Diagnostics) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Config) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(cfg *Config) error {
	return fn(cfg)
}

package reconcile

import (
	"fmt"

	"github.com/goliatone/go-planconfig/pkg/identity"
)

type options struct {
	ids          identity.Generator
	suggestions  int
	orphanChecks bool
}

func defaultOptions() *options {
	return &options{
		ids: identity.UUID(),
	}
}

// Option configures an Engine.
type Option func(*options) error

func newOptions(opts ...Option) (*options, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithIDGenerator injects the record id generator. Tests pass
// identity.Sequence for deterministic ids.
func WithIDGenerator(gen identity.Generator) Option {
	return func(o *options) error {
		if gen == nil {
			return fmt.Errorf("reconcile: id generator cannot be nil")
		}
		o.ids = gen
		return nil
	}
}

// WithSuggestions attaches up to n close DB mapping field names to every
// "no DB mapping" diagnostic. Zero disables suggestions.
func WithSuggestions(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("reconcile: suggestions must be >= 0, got %d", n)
		}
		o.suggestions = n
		return nil
	}
}

// WithOrphanChecks reports DB mapping, validation and formula rows whose field
// matches no design field.
func WithOrphanChecks(enabled bool) Option {
	return func(o *options) error {
		o.orphanChecks = enabled
		return nil
	}
}

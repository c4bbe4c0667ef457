package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	internalLoader "github.com/goliatone/go-planconfig/internal/loader"
	"github.com/goliatone/go-planconfig/pkg/adapters"
	"github.com/goliatone/go-planconfig/pkg/figma"
	"github.com/goliatone/go-planconfig/pkg/logging"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/reconcile"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source loader.
func WithLoader(loader sources.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects the adapter registry used to decode uploads.
func WithRegistry(registry *adapters.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithEngine injects a preconfigured reconciliation engine.
func WithEngine(engine *reconcile.Engine) Option {
	return func(o *Orchestrator) {
		o.engine = engine
	}
}

// WithDecorators registers decorators that run against the generated records.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithFigmaClient sets the client used when a Request carries a Figma link.
func WithFigmaClient(client *figma.Client) Option {
	return func(o *Orchestrator) {
		o.figma = client
	}
}

// Orchestrator coordinates loading, decoding, reconciliation and decoration.
// Missing dependencies fall back to the built-in implementations.
type Orchestrator struct {
	loader        sources.Loader
	registry      *adapters.Registry
	engine        *reconcile.Engine
	figma         *figma.Client
	decorators    []model.Decorator
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// FigmaRequest asks the orchestrator to pull the design extract from Figma
// instead of (or on top of) an uploaded design document.
type FigmaRequest struct {
	Link   string
	NodeID string
}

// Request describes the uploads for one generation call.
type Request struct {
	// PlanType scopes the generated records. Required.
	PlanType model.PlanType

	// Design locates the design extract (design-json or a saved Figma nodes
	// response). Optional when Figma or Bundle supplies design data.
	Design sources.Source

	// DBMapping, Validations and Formulas are optional enrichment uploads.
	DBMapping   sources.Source
	Validations sources.Source
	Formulas    sources.Source

	// Figma fetches the design extract through the configured client. It
	// replaces any design decoded from Design.
	Figma *FigmaRequest

	// Bundle seeds the merge with already-decoded data. Uploaded slots
	// replace the matching Bundle slots.
	Bundle *sources.Bundle
}

type slot struct {
	role   adapters.Role
	source sources.Source
}

// Generate loads and decodes every upload in req, reconciles the merged
// bundle and applies the configured decorators. When the bundle has no
// design fields the (empty) result is returned with
// reconcile.ErrNoDesignFields.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*reconcile.Result, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if req.PlanType == "" {
		return nil, errors.New("orchestrator: plan type is required")
	}

	bundle, err := o.collect(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.Reconcile(ctx, req.PlanType, bundle)
	if err != nil {
		return result, err
	}

	if err := o.applyDecorators(result); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("plan_type", string(req.PlanType)).
		Int("records", len(result.Records)).
		Int("diagnostics", result.Diagnostics.Len()).
		Msg("generated plan configuration")

	return result, nil
}

func (o *Orchestrator) collect(ctx context.Context, req Request) (sources.Bundle, error) {
	var bundle sources.Bundle
	if req.Bundle != nil {
		bundle = *req.Bundle
	}

	slots := []slot{
		{role: adapters.RoleDesign, source: req.Design},
		{role: adapters.RoleDBMapping, source: req.DBMapping},
		{role: adapters.RoleValidation, source: req.Validations},
		{role: adapters.RoleFormula, source: req.Formulas},
	}
	decoded := make([]*sources.Bundle, len(slots))

	group, gctx := errgroup.WithContext(ctx)
	for i, s := range slots {
		if s.source == nil {
			continue
		}
		i, s := i, s
		group.Go(func() error {
			doc, err := o.loader.Load(gctx, s.source)
			if err != nil {
				return fmt.Errorf("orchestrator: load %s: %w", s.role, err)
			}
			part, err := o.registry.Decode(gctx, s.role, doc)
			if err != nil {
				return fmt.Errorf("orchestrator: decode %s: %w", s.role, err)
			}
			decoded[i] = &part
			return nil
		})
	}
	var figmaDesign *sources.DesignData
	if req.Figma != nil {
		group.Go(func() error {
			data, err := o.figma.Fields(gctx, req.Figma.Link, req.Figma.NodeID)
			if err != nil {
				return fmt.Errorf("orchestrator: figma: %w", err)
			}
			figmaDesign = data
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return sources.Bundle{}, err
	}

	mergeSlots(&bundle, slots, decoded)
	if figmaDesign != nil {
		bundle.Design = figmaDesign
	}
	return bundle, nil
}

// mergeSlots copies only the slot each upload is responsible for. An upload
// that decodes to zero rows still replaces the seeded slot.
func mergeSlots(bundle *sources.Bundle, slots []slot, decoded []*sources.Bundle) {
	for i, part := range decoded {
		if part == nil {
			continue
		}
		switch slots[i].role {
		case adapters.RoleDesign:
			bundle.Merge(sources.Bundle{Design: part.Design})
		case adapters.RoleDBMapping:
			bundle.Merge(sources.Bundle{DBMappings: nonNil(part.DBMappings)})
		case adapters.RoleValidation:
			bundle.Merge(sources.Bundle{Validations: nonNil(part.Validations)})
		case adapters.RoleFormula:
			bundle.Merge(sources.Bundle{Formulas: nonNil(part.Formulas)})
		}
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func (o *Orchestrator) applyDecorators(result *reconcile.Result) error {
	if len(o.decorators) == 0 || result == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		var err error
		if dd, ok := decorator.(model.DiagnosticDecorator); ok {
			err = dd.DecorateWithDiagnostics(&result.Records, &result.Diagnostics)
		} else {
			err = decorator.Decorate(&result.Records)
		}
		if err != nil {
			return fmt.Errorf("orchestrator: decorate records: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(sources.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = adapters.Default()
	}
	if o.figma == nil {
		o.figma = &figma.Client{}
	}
	if o.engine == nil {
		engine, err := reconcile.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default engine: %w", err)
			return
		}
		o.engine = engine
	}
}

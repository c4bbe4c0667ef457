package reconcile

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-planconfig/pkg/diagnostic"
	"github.com/goliatone/go-planconfig/pkg/identity"
	"github.com/goliatone/go-planconfig/pkg/logging"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// Engine reconciles a source bundle into configuration records. An Engine
// holds no per-call state and is safe for concurrent use.
type Engine struct {
	assembler    *Assembler
	suggestions  int
	orphanChecks bool
}

// New constructs an Engine.
func New(opts ...Option) (*Engine, error) {
	cfg, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{
		assembler:    NewAssembler(cfg.ids),
		suggestions:  cfg.suggestions,
		orphanChecks: cfg.orphanChecks,
	}, nil
}

// Reconcile builds a one-shot Engine and runs it.
func Reconcile(ctx context.Context, planType model.PlanType, bundle sources.Bundle, opts ...Option) (*Result, error) {
	engine, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return engine.Reconcile(ctx, planType, bundle)
}

// Reconcile produces one record per design field, in design order. Missing
// enrichment data is reported through Result.Diagnostics; only a missing
// design source is an error. The bundle is never modified.
func (e *Engine) Reconcile(ctx context.Context, planType model.PlanType, bundle sources.Bundle) (*Result, error) {
	if ctx == nil {
		return nil, errors.New("reconcile: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	result := &Result{
		PlanType: planType,
		Records:  model.Config{},
		Mappings: map[string]sources.DBMapping{},
	}

	design := bundle.DesignFields()
	if len(design) == 0 {
		result.Diagnostics.Warn(diagnostic.CodeNoDesignFields, "", MessageNoDesignFields)
		logger.Warn().Str("plan_type", string(planType)).Msg("no design fields to reconcile")
		return result, ErrNoDesignFields
	}

	idx := buildIndex(bundle)
	seen := make(map[string]struct{}, len(design))
	result.Records = make(model.Config, 0, len(design))

	for _, df := range design {
		key := identity.Normalize(df.Label)
		seen[key] = struct{}{}
		if key == "" {
			result.Diagnostics.Warn(diagnostic.CodeEmptyName, "",
				"Design field at order %d has an empty name", df.Order)
		}

		field := e.buildField(key, df, idx)

		if mapping, ok := idx.mapping(key); ok {
			result.Mappings[key] = mapping
			result.Stats.Mapped++
		} else {
			diag := result.Diagnostics.Warn(diagnostic.CodeNoDBMapping, key,
				"No DB mapping found for field: %s", df.Label)
			diag.Suggestions = suggest(key, idx.mappingKeys, e.suggestions)
		}
		if field.IsComputed {
			result.Stats.Computed++
		}
		result.Stats.Validations += len(field.ValidationRules)

		record := e.assembler.Assemble(planType, field, ScreenContexts(df.Section, df.Order))
		result.Records = append(result.Records, record)
	}
	result.Stats.Fields = len(result.Records)

	if e.orphanChecks {
		reportOrphans(&result.Diagnostics, idx, seen)
	}

	logger.Debug().
		Str("plan_type", string(planType)).
		Int("fields", result.Stats.Fields).
		Int("mapped", result.Stats.Mapped).
		Int("computed", result.Stats.Computed).
		Int("diagnostics", result.Diagnostics.Len()).
		Msg("reconciled configuration")

	return result, nil
}

func (e *Engine) buildField(key string, df sources.DesignField, idx *index) model.Field {
	kind := model.ProjectKind(df.Kind)

	placeholder := df.Placeholder
	if placeholder == "" {
		placeholder = "Enter " + strings.ToLower(df.Label)
	}

	rows := idx.rules(key)
	rules := make([]model.ValidationRule, 0, len(rows))
	for _, row := range rows {
		rules = append(rules, model.ValidationRule{
			Type:    row.RuleType,
			Message: row.Message,
			Value:   row.Constraint,
		})
	}

	field := model.Field{
		Name: key,
		Type: kind,
		UIConfig: model.UIConfig{
			Label:       df.Label,
			Placeholder: placeholder,
			HelpText:    df.HelpText,
			AllowSearch: kind.Searchable(),
			Order:       df.Order,
		},
		ValidationRules: rules,
		Options:         []model.DropdownOption{},
	}

	if formula, ok := idx.formula(key); ok {
		field.IsComputed = true
		field.Formula = formula.Formula
	}
	return field
}

func reportOrphans(diags *diagnostic.Diagnostics, idx *index, design map[string]struct{}) {
	for _, key := range idx.mappingKeys {
		if _, ok := design[key]; !ok {
			diags.Info(diagnostic.CodeOrphanDBMapping, key,
				"DB mapping for field %s matches no design field", idx.mappings[key].FieldName)
		}
	}
	for _, key := range idx.ruleKeys {
		if _, ok := design[key]; !ok {
			diags.Info(diagnostic.CodeOrphanValidation, key,
				"Validation for field %s matches no design field", idx.validations[key][0].FieldName)
		}
	}
	for _, key := range idx.formulaKeys {
		if _, ok := design[key]; !ok {
			diags.Info(diagnostic.CodeOrphanFormula, key,
				"Formula for field %s matches no design field", idx.formulas[key].FieldName)
		}
	}
}

package reconcile

import (
	"github.com/goliatone/go-planconfig/pkg/identity"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// index holds read-only lookups over the enrichment sources, keyed by
// normalised field name. Source slices are never modified.
type index struct {
	mappings    map[string]sources.DBMapping
	mappingKeys []string
	validations map[string][]sources.ValidationRow
	ruleKeys    []string
	formulas    map[string]sources.Formula
	formulaKeys []string
}

func buildIndex(bundle sources.Bundle) *index {
	idx := &index{
		mappings:    make(map[string]sources.DBMapping, len(bundle.DBMappings)),
		validations: make(map[string][]sources.ValidationRow),
		formulas:    make(map[string]sources.Formula, len(bundle.Formulas)),
	}

	// First match wins for mappings and formulas.
	for _, mapping := range bundle.DBMappings {
		key := identity.Normalize(mapping.FieldName)
		if _, seen := idx.mappings[key]; seen {
			continue
		}
		idx.mappings[key] = mapping
		idx.mappingKeys = append(idx.mappingKeys, key)
	}

	for _, formula := range bundle.Formulas {
		key := identity.Normalize(formula.FieldName)
		if _, seen := idx.formulas[key]; seen {
			continue
		}
		idx.formulas[key] = formula
		idx.formulaKeys = append(idx.formulaKeys, key)
	}

	// Every validation row is kept, in source order.
	for _, rule := range bundle.Validations {
		key := identity.Normalize(rule.FieldName)
		if _, seen := idx.validations[key]; !seen {
			idx.ruleKeys = append(idx.ruleKeys, key)
		}
		idx.validations[key] = append(idx.validations[key], rule)
	}

	return idx
}

func (idx *index) mapping(key string) (sources.DBMapping, bool) {
	m, ok := idx.mappings[key]
	return m, ok
}

func (idx *index) formula(key string) (sources.Formula, bool) {
	f, ok := idx.formulas[key]
	return f, ok
}

func (idx *index) rules(key string) []sources.ValidationRow {
	return idx.validations[key]
}

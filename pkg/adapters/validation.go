package adapters

import (
	"context"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

const (
	defaultRuleType = "required"
	defaultMessage  = "Validation failed"
)

type validationSheet struct{}

// NewValidationSheet decodes validation spreadsheets. Columns:
// field_name|fieldName|field, validation_type|type (default "required"),
// message|error_message (default "Validation failed") and value|constraint.
// Constraint cells reading as numbers or booleans are typed accordingly.
func NewValidationSheet() Adapter {
	return validationSheet{}
}

func (validationSheet) Name() string { return "validation-sheet" }

func (validationSheet) Role() Role { return RoleValidation }

func (validationSheet) Detect(src sources.Source, raw []byte) bool {
	return isSpreadsheet(src, raw)
}

func (validationSheet) Decode(_ context.Context, doc sources.Document) (sources.Bundle, error) {
	rows, err := readSheet(doc)
	if err != nil {
		return sources.Bundle{}, err
	}

	rules := make([]sources.ValidationRow, 0, len(rows))
	for _, r := range rows {
		rules = append(rules, sources.ValidationRow{
			FieldName:  r.first("field_name", "fieldName", "field"),
			RuleType:   r.firstOr(defaultRuleType, "validation_type", "type"),
			Message:    r.firstOr(defaultMessage, "message", "error_message"),
			Constraint: coerce(r.first("value", "constraint")),
		})
	}
	return sources.Bundle{Validations: rules}, nil
}

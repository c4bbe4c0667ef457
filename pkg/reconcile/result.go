package reconcile

import (
	"github.com/goliatone/go-planconfig/pkg/diagnostic"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// Result is the outcome of one reconciliation pass.
type Result struct {
	PlanType    model.PlanType
	Records     model.Config
	Diagnostics diagnostic.Diagnostics
	// Mappings holds the DB mapping matched for each record, keyed by field
	// name. Fields without a mapping are absent.
	Mappings map[string]sources.DBMapping
	Stats    Stats
}

// Stats summarises a pass.
type Stats struct {
	Fields      int
	Mapped      int
	Computed    int
	Validations int
}

// Messages returns the ordered diagnostic messages. Never nil.
func (r *Result) Messages() []string {
	if r == nil {
		return []string{}
	}
	return r.Diagnostics.Messages()
}

// Warnings returns warning-level diagnostics only.
func (r *Result) Warnings() []diagnostic.Diagnostic {
	if r == nil {
		return nil
	}
	return r.Diagnostics.Warnings()
}

// HasWarnings reports whether any warning was recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

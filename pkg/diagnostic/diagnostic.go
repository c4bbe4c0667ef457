package diagnostic

import (
	"fmt"
	"strings"
)

// Severity is the level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity name in JSON/YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Codes identify the kind of gap a diagnostic describes.
const (
	CodeNoDesignFields   = "no_design_fields"
	CodeNoDBMapping      = "no_db_mapping"
	CodeEmptyName        = "empty_name"
	CodeOrphanValidation = "orphan_validation"
	CodeOrphanFormula    = "orphan_formula"
	CodeOrphanDBMapping  = "orphan_db_mapping"
	CodeOverlayUnmatched = "overlay_unmatched"
)

// Diagnostic is a single advisory message.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code,omitempty"`
	Message  string   `json:"message"`
	// Field is the normalised field name the diagnostic relates to, if any.
	Field string `json:"field,omitempty"`
	// Suggestions are close candidates from the source that failed to match.
	Suggestions []string `json:"suggestions,omitempty"`
}

// String returns the message, followed by suggestions when present.
func (d Diagnostic) String() string {
	if len(d.Suggestions) == 0 {
		return d.Message
	}
	return fmt.Sprintf("%s (did you mean: %s?)", d.Message, strings.Join(d.Suggestions, ", "))
}

// Diagnostics is an ordered collection of diagnostics. The zero value is ready
// to use.
type Diagnostics struct {
	items []Diagnostic
}

// Add appends a diagnostic.
func (d *Diagnostics) Add(diag Diagnostic) {
	d.items = append(d.items, diag)
}

// Warn appends a warning and returns a pointer to it so callers can attach
// suggestions. The pointer is only valid until the next append.
func (d *Diagnostics) Warn(code, field, format string, args ...any) *Diagnostic {
	d.items = append(d.items, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
	return &d.items[len(d.items)-1]
}

// Info appends an informational diagnostic.
func (d *Diagnostics) Info(code, field, format string, args ...any) {
	d.items = append(d.items, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Merge appends all diagnostics from other, preserving order.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.items = append(d.items, other.items...)
}

// All returns a copy of every diagnostic in insertion order.
func (d Diagnostics) All() []Diagnostic {
	return append([]Diagnostic(nil), d.items...)
}

// Warnings returns only warning-level diagnostics.
func (d Diagnostics) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, item := range d.items {
		if item.Severity == SeverityWarning {
			out = append(out, item)
		}
	}
	return out
}

// Messages returns the plain message list surfaced to operators. The result is
// never nil.
func (d Diagnostics) Messages() []string {
	out := make([]string, 0, len(d.items))
	for _, item := range d.items {
		out = append(out, item.Message)
	}
	return out
}

// ByCode returns the diagnostics carrying the given code.
func (d Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, item := range d.items {
		if item.Code == code {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of diagnostics.
func (d Diagnostics) Len() int {
	return len(d.items)
}

// Empty reports whether no diagnostics were recorded.
func (d Diagnostics) Empty() bool {
	return len(d.items) == 0
}

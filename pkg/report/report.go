// Package report renders human-readable summaries of a reconciliation run in
// text, table or markdown form.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/reconcile"
)

// Format selects a report renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a format name; empty means text.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatTable, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("report: unknown format %q", raw)
	}
}

// Render returns the plain-text summary of result for planType.
func Render(result *reconcile.Result, planType model.PlanType) (string, error) {
	var buf bytes.Buffer
	if err := writeText(&buf, build(result, planType)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders result in the given format to w.
func Write(w io.Writer, format Format, result *reconcile.Result) error {
	if w == nil {
		return fmt.Errorf("report: writer is nil")
	}
	var planType model.PlanType
	if result != nil {
		planType = result.PlanType
	}
	summary := build(result, planType)

	switch format {
	case "", FormatText:
		return writeText(w, summary)
	case FormatTable:
		return writeTable(w, summary)
	case FormatMarkdown:
		return writeMarkdown(w, summary)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

type summary struct {
	PlanType    string
	Fields      int
	Mapped      int
	Computed    int
	Validations int
	Rows        []fieldRow
	Formulas    []formulaRow
	Diagnostics []string
}

type fieldRow struct {
	Order    string
	Name     string
	Label    string
	Type     string
	Column   string
	Table    string
	Rules    string
	Computed string
}

type formulaRow struct {
	Name    string
	Formula string
}

func build(result *reconcile.Result, planType model.PlanType) summary {
	s := summary{PlanType: string(planType)}
	if result == nil {
		return s
	}

	s.Fields = result.Stats.Fields
	s.Mapped = result.Stats.Mapped
	s.Computed = result.Stats.Computed
	s.Validations = result.Stats.Validations

	for _, record := range result.Records {
		field := record.Field
		row := fieldRow{
			Order: strconv.Itoa(field.UIConfig.Order),
			Name:  field.Name,
			Label: field.UIConfig.Label,
			Type:  string(field.Type),
			Rules: strconv.Itoa(len(field.ValidationRules)),
		}
		if mapping, ok := result.Mappings[field.Name]; ok {
			row.Column = mapping.DBColumn
			row.Table = mapping.TableName
		}
		if field.IsComputed {
			row.Computed = "yes"
			s.Formulas = append(s.Formulas, formulaRow{Name: field.Name, Formula: field.Formula})
		}
		s.Rows = append(s.Rows, row)
	}

	for _, diag := range result.Diagnostics.All() {
		s.Diagnostics = append(s.Diagnostics, diag.String())
	}
	return s
}

package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goliatone/go-planconfig/pkg/identity"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/reconcile"
	"github.com/goliatone/go-planconfig/pkg/report"
	"github.com/goliatone/go-planconfig/pkg/sources"
	"github.com/goliatone/go-planconfig/pkg/testsupport"
)

func sampleResult(t *testing.T) *reconcile.Result {
	t.Helper()
	bundle := sources.Bundle{
		Design: &sources.DesignData{Fields: []sources.DesignField{
			{Label: "Carrier", Kind: "dynamicSelect", Order: 1},
			{Label: "Annual Premium", Kind: "number", Order: 2},
			{Label: "Monthly Cost", Kind: "number", Order: 3},
		}},
		DBMappings: []sources.DBMapping{
			{FieldName: "annual_premium", DBColumn: "premium_annual", TableName: "plan_rates"},
			{FieldName: "monthly_cost", DBColumn: "monthly_cost"},
		},
		Validations: []sources.ValidationRow{
			{FieldName: "annual_premium", RuleType: "required", Message: "required"},
			{FieldName: "annual_premium", RuleType: "min", Message: "min", Constraint: 0.0},
		},
		Formulas: []sources.Formula{{FieldName: "monthly_cost", Formula: "annual_premium / 12 && x < y"}},
	}
	result, err := reconcile.Reconcile(testsupport.Context(), model.PlanTypeMedical, bundle,
		reconcile.WithIDGenerator(identity.Sequence("r")))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	return result
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRender(t *testing.T) {
	out, err := report.Render(sampleResult(t), model.PlanTypeMedical)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	assertContains(t, out,
		"Plan type: MEDICAL\n",
		"Fields: 3 (2 mapped, 1 computed, 2 validation rules)\n",
		"  1. carrier [dynamicSelect]\n",
		"  2. annual_premium [number] -> plan_rates.premium_annual (2 rules)\n",
		"  3. monthly_cost [number] -> monthly_cost\n",
		"Computed fields:\n  monthly_cost = annual_premium / 12 && x < y\n",
		"Diagnostics (1):\n  - No DB mapping found for field: Carrier\n",
	)
}

func TestRender_NilResult(t *testing.T) {
	out, err := report.Render(nil, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, out, "Plan type: (none)", "Fields: 0", "No diagnostics.")
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, report.FormatTable, sampleResult(t)); err != nil {
		t.Fatalf("write: %v", err)
	}
	assertContains(t, buf.String(),
		"Plan type: MEDICAL (3 fields, 2 mapped, 1 computed)",
		"premium_annual",
		"plan_rates",
		"! No DB mapping found for field: Carrier",
	)
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, report.FormatMarkdown, sampleResult(t)); err != nil {
		t.Fatalf("write: %v", err)
	}
	assertContains(t, buf.String(),
		"# MEDICAL plan configuration",
		"`annual_premium`",
		"## Computed fields",
		"## Diagnostics",
		"No DB mapping found for field: Carrier",
	)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]report.Format{
		"":         report.FormatText,
		"TEXT":     report.FormatText,
		"table":    report.FormatTable,
		"md":       report.FormatMarkdown,
		"markdown": report.FormatMarkdown,
	}
	for raw, want := range cases {
		got, err := report.ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("parse %q: want %q, got %q (err %v)", raw, want, got, err)
		}
	}
	if _, err := report.ParseFormat("pdf"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if err := report.Write(&bytes.Buffer{}, "pdf", nil); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

package adapters_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/goliatone/go-planconfig/pkg/adapters"
	"github.com/goliatone/go-planconfig/pkg/sources"
	"github.com/goliatone/go-planconfig/pkg/testsupport"
)

func loadDoc(t *testing.T, name string) sources.Document {
	t.Helper()
	path := filepath.Join("testdata", name)
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return sources.MustNewDocument(sources.SourceFromFile(path), raw)
}

func decode(t *testing.T, role adapters.Role, doc sources.Document) sources.Bundle {
	t.Helper()
	bundle, err := adapters.Default().Decode(testsupport.Context(), role, doc)
	if err != nil {
		t.Fatalf("decode %s: %v", role, err)
	}
	return bundle
}

func TestDefaultRegistry_List(t *testing.T) {
	want := []string{"ctx-formula-xml", "db-mapping-sheet", "design-json", "figma-nodes", "validation-sheet"}
	if diff := cmp.Diff(want, adapters.Default().List()); diff != "" {
		t.Fatalf("adapters mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RegisterRejectsDuplicates(t *testing.T) {
	registry := adapters.NewRegistry()
	registry.MustRegister(adapters.NewDesignJSON())
	if err := registry.Register(adapters.NewDesignJSON()); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := registry.Get(" Design-JSON "); err != nil {
		t.Fatalf("expected case-insensitive lookup, got %v", err)
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected error for unknown adapter")
	}
}

func TestRegistry_DecodeWithoutMatchingAdapter(t *testing.T) {
	doc := sources.MustNewDocument(sources.SourceFromFile("notes.md"), []byte("# heading"))
	_, err := adapters.Default().Decode(testsupport.Context(), adapters.RoleFormula, doc)
	if !errors.Is(err, adapters.ErrNoAdapter) {
		t.Fatalf("expected ErrNoAdapter, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	role, err := adapters.ParseRole(" DB_Mapping ")
	if err != nil || role != adapters.RoleDBMapping {
		t.Fatalf("unexpected role %q err %v", role, err)
	}
	if _, err := adapters.ParseRole("pricing"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestDBMappingSheet_CSV(t *testing.T) {
	bundle := decode(t, adapters.RoleDBMapping, loadDoc(t, "db_mapping.csv"))

	want := []sources.DBMapping{
		{FieldName: "carrier", DBColumn: "carrier_id", DataType: "string", TableName: "plans"},
		{FieldName: "plan_size", DBColumn: "size_code", DataType: "string", TableName: "plans"},
		{FieldName: "Annual Premium", DBColumn: "premium_annual", DataType: "number", TableName: "plan_rates"},
	}
	if diff := cmp.Diff(want, bundle.DBMappings); diff != "" {
		t.Fatalf("mappings mismatch (-want +got):\n%s", diff)
	}
	if bundle.Design != nil || bundle.Validations != nil || bundle.Formulas != nil {
		t.Fatalf("only the db mapping slot should be set: %+v", bundle)
	}
}

func TestDBMappingSheet_Aliases(t *testing.T) {
	bundle := decode(t, adapters.RoleDBMapping, loadDoc(t, "db_mapping_aliases.csv"))

	want := []sources.DBMapping{{FieldName: "carrier", DBColumn: "carrier_id", DataType: "string", TableName: "plans"}}
	if diff := cmp.Diff(want, bundle.DBMappings); diff != "" {
		t.Fatalf("mappings mismatch (-want +got):\n%s", diff)
	}
}

func TestDBMappingSheet_XLSX(t *testing.T) {
	book := excelize.NewFile()
	defer book.Close()
	sheet := book.GetSheetName(0)
	rows := [][]any{
		{"field_name", "db_column", "data_type", "table_name"},
		{"carrier", "carrier_id", "string", "plans"},
		{},
		{"deductible", "deductible_amt", "number", "plan_rates"},
	}
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		values := values
		if err := book.SetSheetRow(sheet, cell, &values); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := book.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	doc := sources.MustNewDocument(sources.SourceFromFile("mappings.xlsx"), buf.Bytes())
	bundle := decode(t, adapters.RoleDBMapping, doc)

	want := []sources.DBMapping{
		{FieldName: "carrier", DBColumn: "carrier_id", DataType: "string", TableName: "plans"},
		{FieldName: "deductible", DBColumn: "deductible_amt", DataType: "number", TableName: "plan_rates"},
	}
	if diff := cmp.Diff(want, bundle.DBMappings); diff != "" {
		t.Fatalf("mappings mismatch (-want +got):\n%s", diff)
	}
}

func TestValidationSheet_CSV(t *testing.T) {
	bundle := decode(t, adapters.RoleValidation, loadDoc(t, "validations.csv"))

	want := []sources.ValidationRow{
		{FieldName: "carrier", RuleType: "required", Message: "Carrier is required"},
		{FieldName: "annual_premium", RuleType: "min", Message: "Validation failed", Constraint: 0.0},
		{FieldName: "annual_premium", RuleType: "required", Message: "Premium is required"},
		{FieldName: "plan_size", RuleType: "pattern", Message: "Invalid size", Constraint: "^[A-Z]+$"},
		{FieldName: "has_dental", RuleType: "equals", Message: "Validation failed", Constraint: true},
	}
	if diff := cmp.Diff(want, bundle.Validations); diff != "" {
		t.Fatalf("validations mismatch (-want +got):\n%s", diff)
	}
}

func TestFormulaXML(t *testing.T) {
	bundle := decode(t, adapters.RoleFormula, loadDoc(t, "formulas.xml"))

	want := []sources.Formula{
		{FieldName: "monthly_cost", Formula: "annual_premium / 12", Dependencies: []string{"annual_premium"}},
		{FieldName: "total_cost", Formula: "monthly_cost * 12 + fees", Dependencies: []string{"monthly_cost", "fees"}},
	}
	if diff := cmp.Diff(want, bundle.Formulas); diff != "" {
		t.Fatalf("formulas mismatch (-want +got):\n%s", diff)
	}
}

func TestFormulaXML_Malformed(t *testing.T) {
	doc := sources.MustNewDocument(sources.SourceFromFile("broken.xml"), []byte("<root><field name=\"a\">"))
	if _, err := adapters.Default().Decode(testsupport.Context(), adapters.RoleFormula, doc); err == nil {
		t.Fatalf("expected parse error")
	}
}

var wantDesign = []sources.DesignField{
	{Label: "Carrier", Kind: "dynamicSelect", Placeholder: "Select carrier", HelpText: "Choose the insurance carrier", Order: 1, Section: "planDetails"},
	{Label: "Plan Size", Kind: "customSelect", Order: 2},
}

func TestDesignJSON_YAMLObject(t *testing.T) {
	bundle := decode(t, adapters.RoleDesign, loadDoc(t, "design.yaml"))

	if bundle.Design == nil {
		t.Fatalf("expected design data")
	}
	if bundle.Design.Link != "https://www.figma.com/file/AbC123/plans" || bundle.Design.NodeID != "12:34" {
		t.Fatalf("unexpected provenance %+v", bundle.Design)
	}
	if diff := cmp.Diff(wantDesign, bundle.Design.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDesignJSON_List(t *testing.T) {
	bundle := decode(t, adapters.RoleDesign, loadDoc(t, "design_list.json"))

	want := append([]sources.DesignField(nil), wantDesign...)
	want[1].Section = "planDetails"
	if diff := cmp.Diff(want, bundle.DesignFields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDesignRole_PicksFigmaNodesForSavedResponses(t *testing.T) {
	doc := loadDoc(t, "figma_nodes.json")
	adapter, err := adapters.Default().Resolve(adapters.RoleDesign, doc)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if adapter.Name() != "figma-nodes" {
		t.Fatalf("expected figma-nodes, got %s", adapter.Name())
	}

	bundle := decode(t, adapters.RoleDesign, doc)
	if got := len(bundle.DesignFields()); got != 4 {
		t.Fatalf("expected 4 extracted fields, got %d", got)
	}
}

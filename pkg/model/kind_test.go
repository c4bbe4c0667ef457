package model_test

import (
	"testing"

	"github.com/goliatone/go-planconfig/pkg/model"
)

func TestProjectKind(t *testing.T) {
	cases := map[string]model.FieldType{
		"text":          model.FieldTypeText,
		"TEXT":          model.FieldTypeText,
		"number":        model.FieldTypeNumber,
		"date":          model.FieldTypeDate,
		"dropdown":      model.FieldTypeDropdown,
		"select":        model.FieldTypeCustomSelect,
		"dynamicSelect": model.FieldTypeDynamicSelect,
		"dynamicselect": model.FieldTypeDynamicSelect,
		"customSelect":  model.FieldTypeCustomSelect,
		"Checkbox":      model.FieldTypeCheckbox,
		"foobar":        model.FieldTypeText,
		"":              model.FieldTypeText,
		" text ":        model.FieldTypeText,
		"multiselect":   model.FieldTypeText,
	}
	for in, want := range cases {
		if got := model.ProjectKind(in); got != want {
			t.Errorf("ProjectKind(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFieldType_Searchable(t *testing.T) {
	searchable := map[model.FieldType]bool{
		model.FieldTypeDynamicSelect: true,
		model.FieldTypeCustomSelect:  true,
		model.FieldTypeText:          false,
		model.FieldTypeDropdown:      false,
		model.FieldTypeCheckbox:      false,
	}
	for kind, want := range searchable {
		if got := kind.Searchable(); got != want {
			t.Errorf("%s.Searchable() = %v, want %v", kind, got, want)
		}
	}
}

func TestParsePlanType(t *testing.T) {
	got, err := model.ParsePlanType(" dental ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != model.PlanTypeDental {
		t.Fatalf("expected DENTAL, got %q", got)
	}
	if _, err := model.ParsePlanType("PET"); err == nil {
		t.Fatalf("expected unknown plan type error")
	}
	if _, err := model.ParsePlanType(""); err == nil {
		t.Fatalf("expected empty plan type error")
	}
	if len(model.PlanTypes()) != 5 {
		t.Fatalf("expected five built-in plan types")
	}
}

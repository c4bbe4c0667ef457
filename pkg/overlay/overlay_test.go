package overlay_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-planconfig/pkg/diagnostic"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/overlay"
	"github.com/goliatone/go-planconfig/pkg/reconcile"
)

func loadStore(t *testing.T) *overlay.Store {
	t.Helper()
	store, err := overlay.LoadFS(os.DirFS("testdata/overlays"))
	if err != nil {
		t.Fatalf("load overlays: %v", err)
	}
	return store
}

func record(planType model.PlanType, name string) model.ConfigItem {
	return model.ConfigItem{
		ID:      name,
		Type:    planType,
		SubType: model.SubTypeField,
		Module:  model.ModuleCPQ,
		Field: model.Field{
			Name:            name,
			Type:            model.FieldTypeCustomSelect,
			UIConfig:        model.UIConfig{Label: name, Placeholder: "Enter " + name, Order: 1},
			ValidationRules: []model.ValidationRule{},
			Options:         []model.DropdownOption{},
		},
		ScreenContexts: reconcile.ScreenContexts("planDetails", 1),
	}
}

func TestLoadFS(t *testing.T) {
	store := loadStore(t)

	if diff := cmp.Diff([]string{"carrier", "network_tier", "plan_size"}, store.Keys(model.PlanTypeMedical)); diff != "" {
		t.Fatalf("medical keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"carrier", "network_tier"}, store.Keys(model.PlanTypeDental)); diff != "" {
		t.Fatalf("dental keys mismatch (-want +got):\n%s", diff)
	}

	field, ok := store.Lookup(model.PlanTypeMedical, "Plan Size")
	if !ok {
		t.Fatalf("expected plan size overlay")
	}
	if field.Key != "Plan Size" || field.Source != "medical/medical.json" {
		t.Fatalf("unexpected provenance %q from %q", field.Key, field.Source)
	}
	if _, ok := store.Lookup(model.PlanTypeVision, "plan_size"); ok {
		t.Fatalf("medical overlay must not apply to vision")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := overlay.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestParse_RejectsDuplicateNormalisedKeys(t *testing.T) {
	doc := []byte("fields:\n  Plan Size:\n    placeholder: a\n  plan_size:\n    placeholder: b\n  \"  \":\n    placeholder: c\n")
	_, err := overlay.Parse(doc, "dup.yaml")
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	if !strings.Contains(err.Error(), `duplicate field "plan_size"`) {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "normalises to an empty name") {
		t.Fatalf("expected every problem to be reported, got: %v", err)
	}
}

func TestParse_RejectsInvalidDocuments(t *testing.T) {
	for name, data := range map[string]string{
		"empty":   "   ",
		"invalid": "fields: [unclosed",
	} {
		if _, err := overlay.Parse([]byte(data), name); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDecorator_AppliesOverlays(t *testing.T) {
	cfg := model.Config{
		record(model.PlanTypeMedical, "carrier"),
		record(model.PlanTypeMedical, "plan_size"),
		record(model.PlanTypeMedical, "deductible"),
	}

	var diags diagnostic.Diagnostics
	if err := overlay.NewDecorator(loadStore(t)).DecorateWithDiagnostics(&cfg, &diags); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	carrier := cfg[0].Field
	if carrier.APIConfig == nil || carrier.APIConfig.URL != "/api/carriers" {
		t.Fatalf("expected api config on carrier, got %+v", carrier.APIConfig)
	}
	if diff := cmp.Diff([]string{"name", "code"}, carrier.APIConfig.LabelKey); diff != "" {
		t.Fatalf("label key mismatch (-want +got):\n%s", diff)
	}
	if carrier.OutputTransform == nil || !carrier.OutputTransform.Enabled {
		t.Fatalf("expected output transform on carrier")
	}

	size := cfg[1]
	wantOptions := []model.DropdownOption{{Label: "Small Group", Value: "SMALL"}, {Label: "Large Group", Value: "LARGE"}}
	if diff := cmp.Diff(wantOptions, size.Field.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if size.Field.UIConfig.Placeholder != "Pick a group size" {
		t.Fatalf("unexpected placeholder %q", size.Field.UIConfig.Placeholder)
	}
	if size.ScreenContexts[0].Section != "groupSetup" || size.ScreenContexts[1].Section != "overview" {
		t.Fatalf("section override must only touch the create screen: %+v", size.ScreenContexts)
	}

	if diff := cmp.Diff(record(model.PlanTypeMedical, "deductible"), cfg[2]); diff != "" {
		t.Fatalf("unmatched record changed (-want +got):\n%s", diff)
	}

	want := []string{"Overlay field network_tier matches no generated field"}
	if diff := cmp.Diff(want, diags.Messages()); diff != "" {
		t.Fatalf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if got := diags.ByCode(diagnostic.CodeOverlayUnmatched); len(got) != 1 || got[0].Field != "network_tier" {
		t.Fatalf("unexpected overlay diagnostics %+v", got)
	}
}

func TestDecorator_NoopWithoutStore(t *testing.T) {
	cfg := model.Config{record(model.PlanTypeDental, "carrier")}
	want := cfg.Clone()

	if err := overlay.NewDecorator(nil).Decorate(&cfg); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config changed (-want +got):\n%s", diff)
	}
}

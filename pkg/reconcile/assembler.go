package reconcile

import (
	"github.com/goliatone/go-planconfig/pkg/identity"
	"github.com/goliatone/go-planconfig/pkg/model"
)

// Assembler builds ConfigItems from already-resolved pieces. It owns id
// generation so the strategy can vary independently of reconciliation.
type Assembler struct {
	ids identity.Generator
}

// NewAssembler returns an Assembler using ids; nil falls back to UUIDs.
func NewAssembler(ids identity.Generator) *Assembler {
	if ids == nil {
		ids = identity.UUID()
	}
	return &Assembler{ids: ids}
}

// Assemble wraps field and contexts into a record with a fresh id and the
// constant subType/module values.
func (a *Assembler) Assemble(planType model.PlanType, field model.Field, contexts []model.ScreenContext) model.ConfigItem {
	return model.ConfigItem{
		ID:             a.ids(),
		Type:           planType,
		SubType:        model.SubTypeField,
		Module:         model.ModuleCPQ,
		Field:          field,
		ScreenContexts: contexts,
	}
}

// ScreenContexts returns the fixed create/view/edit placements for a design
// field: create uses the design section (default planDetails); view and edit
// sit under overview/identifiersAndSetup; edit is explicitly enabled. All
// three share order.
func ScreenContexts(section string, order int) []model.ScreenContext {
	if section == "" {
		section = model.DefaultCreateSection
	}
	return []model.ScreenContext{
		{
			Screen:  model.ScreenCreate,
			Section: section,
			Order:   order,
		},
		{
			Screen:     model.ScreenView,
			Section:    model.DefaultOverviewSection,
			SubSection: model.DefaultSubSection,
			Order:      order,
		},
		{
			Screen:     model.ScreenEdit,
			Section:    model.DefaultOverviewSection,
			SubSection: model.DefaultSubSection,
			Order:      order,
			Disabled:   model.Bool(false),
		},
	}
}

package overlay

import (
	"github.com/goliatone/go-planconfig/pkg/diagnostic"
	"github.com/goliatone/go-planconfig/pkg/model"
)

// Decorator applies overlay fields to configuration records.
type Decorator struct {
	store *Store
}

var _ model.DiagnosticDecorator = (*Decorator)(nil)

// NewDecorator builds a Decorator backed by store. When store is nil or empty
// the decorator is a no-op.
func NewDecorator(store *Store) *Decorator {
	return &Decorator{store: store}
}

// Decorate applies overlays without reporting unmatched keys.
func (d *Decorator) Decorate(cfg *model.Config) error {
	return d.DecorateWithDiagnostics(cfg, nil)
}

// DecorateWithDiagnostics applies overlays to every matching record and, when
// diags is non-nil, records an overlay_unmatched warning for every overlay
// key that matched no record of the plan types present.
func (d *Decorator) DecorateWithDiagnostics(cfg *model.Config, diags *diagnostic.Diagnostics) error {
	if d == nil || d.store.Empty() || cfg == nil {
		return nil
	}

	type scoped struct {
		planType model.PlanType
		name     string
	}
	matched := map[scoped]struct{}{}
	var planTypes []model.PlanType
	seenPlan := map[model.PlanType]struct{}{}

	for i := range *cfg {
		item := &(*cfg)[i]
		if _, ok := seenPlan[item.Type]; !ok {
			seenPlan[item.Type] = struct{}{}
			planTypes = append(planTypes, item.Type)
		}
		field, ok := d.store.Lookup(item.Type, item.Field.Name)
		if !ok {
			continue
		}
		apply(item, field)
		matched[scoped{item.Type, item.Field.Name}] = struct{}{}
	}

	if diags == nil {
		return nil
	}
	if len(planTypes) == 0 {
		planTypes = []model.PlanType{""}
	}
	for _, planType := range planTypes {
		for _, key := range d.store.Keys(planType) {
			if _, ok := matched[scoped{planType, key}]; ok {
				continue
			}
			diags.Warn(diagnostic.CodeOverlayUnmatched, key, "Overlay field %s matches no generated field", key)
		}
	}
	return nil
}

func apply(item *model.ConfigItem, overlay Field) {
	field := &item.Field
	if len(overlay.Options) > 0 {
		field.Options = append([]model.DropdownOption(nil), overlay.Options...)
	}
	if overlay.APIConfig != nil {
		field.APIConfig = cloneAPIConfig(overlay.APIConfig)
	}
	if overlay.OutputTransform != nil {
		transform := *overlay.OutputTransform
		field.OutputTransform = &transform
	}
	if overlay.Placeholder != "" {
		field.UIConfig.Placeholder = overlay.Placeholder
	}
	if overlay.HelpText != "" {
		field.UIConfig.HelpText = overlay.HelpText
	}
	if overlay.Section != "" {
		for i := range item.ScreenContexts {
			if item.ScreenContexts[i].Screen == model.ScreenCreate {
				item.ScreenContexts[i].Section = overlay.Section
			}
		}
	}
}

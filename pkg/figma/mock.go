package figma

import (
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// MockFields returns the canned extraction used when no API token is
// configured.
func MockFields() []sources.DesignField {
	return []sources.DesignField{
		{
			Label:       "Carrier",
			Kind:        string(model.FieldTypeDynamicSelect),
			Placeholder: "Select carrier",
			HelpText:    "Choose the insurance carrier",
			Order:       1,
			Section:     model.DefaultCreateSection,
		},
		{
			Label:       "Plan Sub-Type",
			Kind:        string(model.FieldTypeCustomSelect),
			Placeholder: "Select plan sub-type",
			Order:       2,
			Section:     model.DefaultCreateSection,
		},
		{
			Label:       "Plan Size",
			Kind:        string(model.FieldTypeCustomSelect),
			Placeholder: "Select plan size",
			Order:       3,
			Section:     model.DefaultCreateSection,
		},
	}
}

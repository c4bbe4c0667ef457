package overlay

import "github.com/goliatone/go-planconfig/pkg/model"

// Store keeps parsed overlays keyed by plan type scope and normalised field
// name. It is safe for concurrent readers when treated as immutable after
// construction.
type Store struct {
	scopes map[model.PlanType]map[string]Field
}

// Field is the overlay for a single field.
type Field struct {
	// Key is the field key as written in the overlay document.
	Key string `json:"-" yaml:"-"`
	// Source is the document the overlay came from.
	Source string `json:"-" yaml:"-"`

	Options         []model.DropdownOption `json:"options,omitempty" yaml:"options,omitempty"`
	APIConfig       *model.APIConfig       `json:"api_config,omitempty" yaml:"api_config,omitempty"`
	OutputTransform *model.OutputTransform `json:"output_transform,omitempty" yaml:"output_transform,omitempty"`
	Placeholder     string                 `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText        string                 `json:"help_text,omitempty" yaml:"help_text,omitempty"`
	Section         string                 `json:"section,omitempty" yaml:"section,omitempty"`
}

type documentFile struct {
	PlanType string           `json:"planType" yaml:"planType"`
	Fields   map[string]Field `json:"fields" yaml:"fields"`
}

package model

// PlanType identifies the benefit plan a configuration belongs to.
type PlanType string

const (
	PlanTypeMedical    PlanType = "MEDICAL"
	PlanTypeDental     PlanType = "DENTAL"
	PlanTypeVision     PlanType = "VISION"
	PlanTypeLife       PlanType = "LIFE"
	PlanTypeDisability PlanType = "DISABILITY"
)

// FieldType is the closed set of field kinds the consuming screens support.
type FieldType string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeNumber        FieldType = "number"
	FieldTypeDate          FieldType = "date"
	FieldTypeDropdown      FieldType = "dropdown"
	FieldTypeDynamicSelect FieldType = "dynamicSelect"
	FieldTypeCustomSelect  FieldType = "customSelect"
	FieldTypeCheckbox      FieldType = "checkbox"
)

// Searchable reports whether fields of this kind expose a search box.
func (t FieldType) Searchable() bool {
	return t == FieldTypeDynamicSelect || t == FieldTypeCustomSelect
}

const (
	// SubTypeField is the constant subType of every generated record.
	SubTypeField = "field"
	// ModuleCPQ is the constant module of every generated record.
	ModuleCPQ = "CPQ"
)

const (
	ScreenCreate = "create"
	ScreenView   = "view"
	ScreenEdit   = "edit"
)

const (
	DefaultCreateSection   = "planDetails"
	DefaultOverviewSection = "overview"
	DefaultSubSection      = "identifiersAndSetup"
)

// ValidationRule is a single validation constraint attached to a field.
type ValidationRule struct {
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// DropdownOption is a static choice for dropdown/select fields.
type DropdownOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// APIConfig describes the remote lookup backing a dynamicSelect field.
type APIConfig struct {
	URL            string            `json:"url" yaml:"url"`
	Method         string            `json:"method" yaml:"method"`
	Headers        map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Params         map[string]any    `json:"params,omitempty" yaml:"params,omitempty"`
	ValueKey       string            `json:"value_key" yaml:"value_key"`
	LabelKey       []string          `json:"label_key" yaml:"label_key"`
	LabelSeparator string            `json:"label_separator,omitempty" yaml:"label_separator,omitempty"`
	CacheDuration  int               `json:"cache_duration,omitempty" yaml:"cache_duration,omitempty"`
	Timeout        int               `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// OutputTransform controls how a selected value is written back.
type OutputTransform struct {
	Enabled            bool   `json:"enabled" yaml:"enabled"`
	OutputFieldPath    string `json:"output_field_path" yaml:"output_field_path"`
	TransformationType string `json:"transformation_type" yaml:"transformation_type"`
}

// UIConfig holds display metadata.
type UIConfig struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	HelpText    string `json:"help_text,omitempty"`
	AllowSearch bool   `json:"allow_search,omitempty"`
	Order       int    `json:"order"`
}

// ScreenContext places a field on one of the create/view/edit screens.
// Disabled is a pointer so an explicit false survives serialisation.
type ScreenContext struct {
	Screen     string `json:"screen"`
	Section    string `json:"section"`
	SubSection string `json:"sub_section,omitempty"`
	Order      int    `json:"order"`
	Disabled   *bool  `json:"disabled,omitempty"`
}

// Field is the field definition carried by every ConfigItem.
type Field struct {
	Name            string           `json:"name"`
	Type            FieldType        `json:"type"`
	UIConfig        UIConfig         `json:"ui_config"`
	ValidationRules []ValidationRule `json:"validation_rules"`
	Options         []DropdownOption `json:"options"`
	APIConfig       *APIConfig       `json:"api_config,omitempty"`
	OutputTransform *OutputTransform `json:"output_transform,omitempty"`
	IsComputed      bool             `json:"is_computed,omitempty"`
	Formula         string           `json:"formula,omitempty"`
}

// ConfigItem is one configuration record: the output unit of generation and
// the unit of storage/editing.
type ConfigItem struct {
	ID             string          `json:"_id"`
	Type           PlanType        `json:"type"`
	SubType        string          `json:"subType"`
	Module         string          `json:"module"`
	Field          Field           `json:"field"`
	ScreenContexts []ScreenContext `json:"screen_contexts"`
}

// Config is an ordered list of configuration records for one plan type.
type Config []ConfigItem

// Bool returns a pointer to v, for ScreenContext.Disabled.
func Bool(v bool) *bool {
	return &v
}

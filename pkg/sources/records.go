package sources

// DesignField is one field detected in a design-source document. Order is the
// traversal sequence and is neither guaranteed unique nor gap-free.
type DesignField struct {
	Label       string `json:"label" yaml:"label"`
	Kind        string `json:"type" yaml:"type"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Order       int    `json:"order" yaml:"order"`
	Section     string `json:"section,omitempty" yaml:"section,omitempty"`
}

// DesignData is the design extract plus where it came from.
type DesignData struct {
	Link   string        `json:"link,omitempty" yaml:"link,omitempty"`
	NodeID string        `json:"nodeId,omitempty" yaml:"nodeId,omitempty"`
	Fields []DesignField `json:"fields" yaml:"fields"`
}

// DBMapping maps a field onto a database column. FieldName is expected, not
// guaranteed, to already be a normalised identifier.
type DBMapping struct {
	FieldName string `json:"fieldName" yaml:"fieldName"`
	DBColumn  string `json:"dbColumn" yaml:"dbColumn"`
	DataType  string `json:"dataType" yaml:"dataType"`
	TableName string `json:"tableName,omitempty" yaml:"tableName,omitempty"`
}

// ValidationRow is one validation rule for a field; a field may have many.
type ValidationRow struct {
	FieldName  string `json:"fieldName" yaml:"fieldName"`
	RuleType   string `json:"type" yaml:"type"`
	Message    string `json:"message" yaml:"message"`
	Constraint any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Formula is a computed-field expression.
type Formula struct {
	FieldName    string   `json:"fieldName" yaml:"fieldName"`
	Formula      string   `json:"formula" yaml:"formula"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Bundle groups the decoded output of every source for one generation call.
// Only Design is required; the others are optional enrichments.
type Bundle struct {
	Design      *DesignData     `json:"design,omitempty"`
	DBMappings  []DBMapping     `json:"dbMappings,omitempty"`
	Validations []ValidationRow `json:"validations,omitempty"`
	Formulas    []Formula       `json:"formulas,omitempty"`
}

// DesignFields returns the design fields or nil when no design data is set.
func (b *Bundle) DesignFields() []DesignField {
	if b == nil || b.Design == nil {
		return nil
	}
	return b.Design.Fields
}

// Merge copies every populated slot of other into b. Slots populated in both
// are replaced by other's value, mirroring a fresh upload replacing the
// previous one.
func (b *Bundle) Merge(other Bundle) {
	if other.Design != nil {
		b.Design = other.Design
	}
	if other.DBMappings != nil {
		b.DBMappings = other.DBMappings
	}
	if other.Validations != nil {
		b.Validations = other.Validations
	}
	if other.Formulas != nil {
		b.Formulas = other.Formulas
	}
}

package model

import "strings"

var kindTable = map[string]FieldType{
	"text":          FieldTypeText,
	"number":        FieldTypeNumber,
	"date":          FieldTypeDate,
	"dropdown":      FieldTypeDropdown,
	"select":        FieldTypeCustomSelect,
	"dynamicselect": FieldTypeDynamicSelect,
	"customselect":  FieldTypeCustomSelect,
	"checkbox":      FieldTypeCheckbox,
}

// ProjectKind maps a source-specific kind label onto a FieldType. Lookup is
// case-insensitive; unknown or empty labels map to FieldTypeText and never
// fail.
func ProjectKind(kind string) FieldType {
	if projected, ok := kindTable[strings.ToLower(kind)]; ok {
		return projected
	}
	return FieldTypeText
}

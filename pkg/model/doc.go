// Package model defines the configuration records produced by the
// reconciliation engine and consumed by the store, overlays and exporters.
// Struct tags follow the on-disk/export format exactly (`_id`, `ui_config`,
// `validation_rules`, `screen_contexts`, ...) because the same JSON is used for
// manual editing and re-import, so producers and consumers must agree on key
// names and nesting. ProjectKind maps design-tool kind labels onto the fixed
// FieldType set, falling back to FieldTypeText for anything unrecognised.
package model

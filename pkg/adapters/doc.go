// Package adapters decodes raw source uploads into sources.Bundle slots.
//
// Each Adapter serves one Role (design, db_mapping, validation, formula) and
// detects the payloads it understands. A Registry picks the adapter for a
// role and document; Default returns a registry with every built-in adapter:
//
//	design-json       design extract as JSON or YAML
//	figma-nodes       saved Figma nodes API response
//	db-mapping-sheet  CSV or XLSX DB mapping sheet
//	validation-sheet  CSV or XLSX validation sheet
//	ctx-formula-xml   CTX formula XML
package adapters

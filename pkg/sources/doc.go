// Package sources defines the typed records each source adapter produces and
// the Source/Document/Loader contracts used to fetch raw uploads.
//
// Four peer sources feed reconciliation: the design extract (the anchor that
// decides which fields exist and in what order), the DB column mapping sheet,
// the validation rule sheet and the CTX formula XML. Adapters resolve every
// key-name variant found in the wild ("field_name", "fieldName", "field",
// "name", ...) into the canonical fields below, so the engine only ever sees
// these shapes.
package sources

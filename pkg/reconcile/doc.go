// Package reconcile merges the four independently authored sources into one
// configuration record per design field.
//
// The design extract is the anchor: it decides which fields exist and in what
// order. DB mappings, validation rows and formulas only enrich, correlated by
// identity.Normalize on both sides. DB mappings and formulas use the first
// matching row; validations keep every matching row in source order. Gaps
// never abort a run; they are recorded as diagnostics so partial source
// coverage still yields an importable configuration. The only hard failure is
// a missing design source (ErrNoDesignFields).
package reconcile

// Package identity derives the canonical join key used to correlate records
// from different sources and provides the opaque id generators handed to the
// record assembler.
//
// Normalize is the only join key across design fields, DB mappings,
// validation rows and formulas: two labels that normalise to the same
// identifier are the same field.
package identity

// Package orchestrator wires the loader → adapter registry → reconciliation
// engine → decorator pipeline behind a single Generate call.
//
// Each upload slot of a Request (design, DB mapping, validations, formulas)
// is loaded and decoded concurrently; the decoded bundles are merged on top
// of an optional pre-built Bundle before the engine runs. Decorators such as
// overlay.Decorator run last and may append diagnostics to the result.
package orchestrator

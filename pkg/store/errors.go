package store

import "errors"

var (
	// ErrUnknownPlanType is returned for plan types the store does not hold.
	ErrUnknownPlanType = errors.New("store: unknown plan type")
	// ErrFieldNotFound is returned when no record carries the requested id.
	ErrFieldNotFound = errors.New("store: field not found")
)

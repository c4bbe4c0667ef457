package model

import (
	"fmt"
	"strings"
)

var planTypes = []PlanType{
	PlanTypeMedical,
	PlanTypeDental,
	PlanTypeVision,
	PlanTypeLife,
	PlanTypeDisability,
}

// PlanTypes returns the built-in plan types in display order.
func PlanTypes() []PlanType {
	return append([]PlanType(nil), planTypes...)
}

// ParsePlanType resolves a plan type case-insensitively.
func ParsePlanType(raw string) (PlanType, error) {
	candidate := PlanType(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate == "" {
		return "", fmt.Errorf("model: plan type is required")
	}
	for _, pt := range planTypes {
		if pt == candidate {
			return pt, nil
		}
	}
	return "", fmt.Errorf("model: unknown plan type %q", raw)
}

// Valid reports whether p is one of the built-in plan types.
func (p PlanType) Valid() bool {
	_, err := ParsePlanType(string(p))
	return err == nil
}

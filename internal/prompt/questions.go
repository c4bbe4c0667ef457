package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-planconfig/pkg/model"
)

// PlanType asks the operator to pick one of planTypes, preselecting current
// when it is present.
func PlanType(ctx context.Context, d Driver, planTypes []model.PlanType, current model.PlanType) (model.PlanType, error) {
	if d == nil {
		return "", errors.New("prompt: driver is nil")
	}
	if len(planTypes) == 0 {
		return "", errors.New("prompt: no plan types to choose from")
	}

	options := make([]string, len(planTypes))
	def := 0
	for i, pt := range planTypes {
		options[i] = string(pt)
		if strings.EqualFold(string(pt), string(current)) {
			def = i
		}
	}

	idx, err := d.Select(ctx, SelectConfig{
		Message:      "Plan type",
		Options:      options,
		DefaultIndex: def,
		Help:         "Every generated record is tagged with this plan type.",
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(planTypes) {
		return "", fmt.Errorf("prompt: selection %d out of range", idx)
	}
	return planTypes[idx], nil
}

// Overwrite asks whether an existing output file may be replaced.
func Overwrite(ctx context.Context, d Driver, path string) (bool, error) {
	if d == nil {
		return false, errors.New("prompt: driver is nil")
	}
	return d.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("%s exists. Overwrite?", path),
	})
}

// FigmaNode asks for the Figma node id when a link was given without one.
func FigmaNode(ctx context.Context, d Driver) (string, error) {
	if d == nil {
		return "", errors.New("prompt: driver is nil")
	}
	return d.Input(ctx, InputConfig{
		Message: "Figma node id",
		Help:    "The node-id query parameter of the frame URL, e.g. 12:34",
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("node id is required")
			}
			return nil
		},
	})
}

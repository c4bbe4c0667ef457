package prompt

import (
	"context"
	"errors"
)

// Scripted is a Driver that replays canned answers in order. It is used by
// command tests.
type Scripted struct {
	Inputs   []string
	Confirms []bool
	Selects  []int
	// Asked records every prompt message, in order.
	Asked []string
}

var _ Driver = (*Scripted)(nil)

var errNoAnswer = errors.New("prompt: no scripted answer")

func (s *Scripted) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Asked = append(s.Asked, cfg.Message)
	if len(s.Inputs) == 0 {
		return "", errNoAnswer
	}
	out := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			return "", err
		}
	}
	return out, nil
}

func (s *Scripted) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.Asked = append(s.Asked, cfg.Message)
	if len(s.Confirms) == 0 {
		return false, errNoAnswer
	}
	out := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return out, nil
}

func (s *Scripted) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.Asked = append(s.Asked, cfg.Message)
	if len(s.Selects) == 0 {
		return 0, errNoAnswer
	}
	out := s.Selects[0]
	s.Selects = s.Selects[1:]
	return out, nil
}

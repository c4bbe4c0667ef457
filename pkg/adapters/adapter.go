package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

// Role is the bundle slot an adapter fills.
type Role string

const (
	RoleDesign     Role = "design"
	RoleDBMapping  Role = "db_mapping"
	RoleValidation Role = "validation"
	RoleFormula    Role = "formula"
)

// Roles lists every role in bundle order.
func Roles() []Role {
	return []Role{RoleDesign, RoleDBMapping, RoleValidation, RoleFormula}
}

// ParseRole resolves a role name, case-insensitively.
func ParseRole(raw string) (Role, error) {
	candidate := Role(strings.ToLower(strings.TrimSpace(raw)))
	for _, role := range Roles() {
		if role == candidate {
			return role, nil
		}
	}
	return "", fmt.Errorf("adapters: unknown role %q", raw)
}

// ErrNoAdapter is returned when no registered adapter accepts a document.
var ErrNoAdapter = errors.New("adapters: no adapter matched document")

// Adapter decodes one kind of source upload.
type Adapter interface {
	// Name is the registry key.
	Name() string
	// Role is the bundle slot Decode fills.
	Role() Role
	// Detect reports whether raw looks like a payload this adapter decodes.
	Detect(src sources.Source, raw []byte) bool
	// Decode parses doc into a bundle with only this adapter's slot set.
	Decode(ctx context.Context, doc sources.Document) (sources.Bundle, error)
}

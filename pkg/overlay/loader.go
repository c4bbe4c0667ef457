package overlay

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-planconfig/pkg/identity"
	"github.com/goliatone/go-planconfig/pkg/model"
)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{scopes: make(map[model.PlanType]map[string]Field)}
}

// LoadFS walks fsys and parses every JSON/YAML overlay file, in lexical path
// order. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := NewStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverlayFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("overlay: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse builds a store from a single overlay document.
func Parse(data []byte, source string) (*Store, error) {
	store := NewStore()
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Lookup returns the overlay for name under planType, falling back to the
// overlays that apply to every plan type.
func (s *Store) Lookup(planType model.PlanType, name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	key := identity.Normalize(name)
	if field, ok := s.scopes[planType][key]; ok {
		return field, true
	}
	field, ok := s.scopes[""][key]
	return field, ok
}

// Keys returns the sorted field keys defined for planType, including the
// ones shared by every plan type.
func (s *Store) Keys(planType model.PlanType) []string {
	if s == nil {
		return nil
	}
	seen := map[string]struct{}{}
	for key := range s.scopes[""] {
		seen[key] = struct{}{}
	}
	if planType != "" {
		for key := range s.scopes[planType] {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Empty reports whether the store holds any overlay.
func (s *Store) Empty() bool {
	if s == nil {
		return true
	}
	for _, fields := range s.scopes {
		if len(fields) > 0 {
			return false
		}
	}
	return true
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	var scope model.PlanType
	if raw := strings.TrimSpace(doc.PlanType); raw != "" {
		// Custom plan types are allowed, so only the spelling is normalised.
		scope = model.PlanType(strings.ToUpper(raw))
	}
	fields, ok := s.scopes[scope]
	if !ok {
		fields = make(map[string]Field, len(doc.Fields))
		s.scopes[scope] = fields
	}

	keys := make([]string, 0, len(doc.Fields))
	for key := range doc.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs error
	for _, key := range keys {
		normalised := identity.Normalize(key)
		if normalised == "" {
			errs = multierr.Append(errs, fmt.Errorf("overlay: file %s field key %q normalises to an empty name", source, key))
			continue
		}
		if existing, exists := fields[normalised]; exists {
			errs = multierr.Append(errs, fmt.Errorf("overlay: file %s defines duplicate field %q (already defined as %q in %s)",
				source, normalised, existing.Key, existing.Source))
			continue
		}
		field := cloneField(doc.Fields[key])
		field.Key = key
		field.Source = source
		fields[normalised] = field
	}
	return errs
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("overlay: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("overlay: parse %s: invalid JSON or YAML", source)
}

func cloneField(field Field) Field {
	out := field
	out.Options = append([]model.DropdownOption(nil), field.Options...)
	out.APIConfig = cloneAPIConfig(field.APIConfig)
	if field.OutputTransform != nil {
		transform := *field.OutputTransform
		out.OutputTransform = &transform
	}
	return out
}

func cloneAPIConfig(src *model.APIConfig) *model.APIConfig {
	if src == nil {
		return nil
	}
	api := *src
	api.LabelKey = append([]string(nil), src.LabelKey...)
	if src.Headers != nil {
		api.Headers = make(map[string]string, len(src.Headers))
		for k, v := range src.Headers {
			api.Headers[k] = v
		}
	}
	if src.Params != nil {
		api.Params = make(map[string]any, len(src.Params))
		for k, v := range src.Params {
			api.Params[k] = v
		}
	}
	return &api
}

func isOverlayFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

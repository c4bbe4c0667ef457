// Package store keeps configuration records per plan type for editing,
// import and export. A Store is safe for concurrent use within one process;
// Snapshot and Restore move its state in and out as JSON.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-planconfig/pkg/identity"
	"github.com/goliatone/go-planconfig/pkg/model"
)

// SnapshotName identifies snapshots written by this package.
const SnapshotName = "config-builder-storage"

// Store holds one ordered Config per plan type.
type Store struct {
	mu        sync.RWMutex
	planTypes []model.PlanType
	configs   map[model.PlanType]model.Config
	selected  model.PlanType
	ids       identity.Generator
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator sets the generator used for records added without an id.
func WithIDGenerator(gen identity.Generator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// New returns a store seeded with the built-in plan types, MEDICAL selected.
func New(opts ...Option) *Store {
	s := &Store{ids: identity.ObjectID()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.planTypes = model.PlanTypes()
	s.configs = make(map[model.PlanType]model.Config, len(s.planTypes))
	for _, pt := range s.planTypes {
		s.configs[pt] = model.Config{}
	}
	s.selected = model.PlanTypeMedical
}

// PlanTypes returns the known plan types in insertion order.
func (s *Store) PlanTypes() []model.PlanType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.PlanType(nil), s.planTypes...)
}

// AddPlanType registers a custom plan type with an empty config. Adding a
// known plan type is a no-op.
func (s *Store) AddPlanType(planType model.PlanType) error {
	pt := canonical(planType)
	if pt == "" {
		return errors.New("store: plan type is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[pt]; ok {
		return nil
	}
	s.planTypes = append(s.planTypes, pt)
	s.configs[pt] = model.Config{}
	return nil
}

// Selected returns the currently selected plan type.
func (s *Store) Selected() model.PlanType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Select changes the selected plan type.
func (s *Store) Select(planType model.PlanType) error {
	pt := canonical(planType)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[pt]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlanType, planType)
	}
	s.selected = pt
	return nil
}

// Add appends a copy of item to the plan type's config and returns the
// stored id, generating one when item has none.
func (s *Store) Add(planType model.PlanType, item model.ConfigItem) (string, error) {
	pt := canonical(planType)

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.configs[pt]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlanType, planType)
	}
	stored := item.Clone()
	if stored.ID == "" {
		stored.ID = s.ids()
	}
	s.configs[pt] = append(cfg, stored)
	return stored.ID, nil
}

// Update replaces the record with the given id. An item without an id keeps
// the replaced record's id.
func (s *Store) Update(planType model.PlanType, id string, item model.ConfigItem) error {
	pt := canonical(planType)

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.configs[pt]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlanType, planType)
	}
	idx := cfg.Find(id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	stored := item.Clone()
	if stored.ID == "" {
		stored.ID = id
	}
	cfg[idx] = stored
	return nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(planType model.PlanType, id string) error {
	pt := canonical(planType)

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, ok := s.configs[pt]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlanType, planType)
	}
	idx := cfg.Find(id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	s.configs[pt] = append(cfg[:idx:idx], cfg[idx+1:]...)
	return nil
}

// Import replaces the plan type's config with a copy of cfg.
func (s *Store) Import(planType model.PlanType, cfg model.Config) error {
	pt := canonical(planType)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[pt]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlanType, planType)
	}
	imported := cfg.Clone()
	if imported == nil {
		imported = model.Config{}
	}
	s.configs[pt] = imported
	return nil
}

// Export returns a copy of the plan type's config.
func (s *Store) Export(planType model.PlanType) (model.Config, error) {
	pt := canonical(planType)

	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[pt]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlanType, planType)
	}
	out := cfg.Clone()
	if out == nil {
		out = model.Config{}
	}
	return out, nil
}

// Clear empties the plan type's config.
func (s *Store) Clear(planType model.PlanType) error {
	pt := canonical(planType)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[pt]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlanType, planType)
	}
	s.configs[pt] = model.Config{}
	return nil
}

type snapshot struct {
	Name             string                          `json:"name"`
	PlanTypes        []model.PlanType                `json:"planTypes"`
	Configs          map[model.PlanType]model.Config `json:"configs"`
	SelectedPlanType model.PlanType                  `json:"selectedPlanType"`
}

// Snapshot serialises the whole store.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		Name:             SnapshotName,
		PlanTypes:        append([]model.PlanType(nil), s.planTypes...),
		Configs:          make(map[model.PlanType]model.Config, len(s.configs)),
		SelectedPlanType: s.selected,
	}
	for pt, cfg := range s.configs {
		snap.Configs[pt] = cfg
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: marshal snapshot: %w", err)
	}
	return data, nil
}

// Restore replaces the store state with a snapshot. Plan types missing from
// the configs map get an empty config; the built-in plan types are always
// present.
func (s *Store) Restore(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("store: unmarshal snapshot: %w", err)
	}
	if snap.Name != "" && snap.Name != SnapshotName {
		return fmt.Errorf("store: snapshot %q is not a %s snapshot", snap.Name, SnapshotName)
	}

	planTypes := model.PlanTypes()
	seen := make(map[model.PlanType]struct{}, len(planTypes))
	for _, pt := range planTypes {
		seen[pt] = struct{}{}
	}
	for _, raw := range snap.PlanTypes {
		pt := canonical(raw)
		if _, ok := seen[pt]; ok || pt == "" {
			continue
		}
		seen[pt] = struct{}{}
		planTypes = append(planTypes, pt)
	}

	configs := make(map[model.PlanType]model.Config, len(planTypes))
	for _, pt := range planTypes {
		cfg := snap.Configs[pt].Clone()
		if cfg == nil {
			cfg = model.Config{}
		}
		configs[pt] = cfg
	}

	selected := canonical(snap.SelectedPlanType)
	if _, ok := configs[selected]; !ok {
		selected = model.PlanTypeMedical
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.planTypes = planTypes
	s.configs = configs
	s.selected = selected
	return nil
}

func canonical(planType model.PlanType) model.PlanType {
	return model.PlanType(strings.ToUpper(strings.TrimSpace(string(planType))))
}

package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-planconfig/pkg/logging"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// MustLoadBundle reads a JSON bundle fixture. Testing helpers fail the test on
// error to keep contract tests concise.
func MustLoadBundle(t *testing.T, path string) sources.Bundle {
	t.Helper()

	bundle, err := LoadBundle(path)
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	return bundle
}

// LoadBundle returns a Bundle without requiring testing.T so fixtures can be
// wired in setup functions.
func LoadBundle(path string) (sources.Bundle, error) {
	if path == "" {
		return sources.Bundle{}, errors.New("testsupport: bundle path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return sources.Bundle{}, fmt.Errorf("testsupport: read bundle: %w", err)
	}
	var out sources.Bundle
	if err := json.Unmarshal(data, &out); err != nil {
		return sources.Bundle{}, fmt.Errorf("testsupport: unmarshal bundle: %w", err)
	}
	return out, nil
}

// MustLoadConfig loads a JSON golden file into a Config.
func MustLoadConfig(t *testing.T, path string) model.Config {
	t.Helper()

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

// LoadConfig reads a JSON fixture into a Config using model.Decode, so empty
// arrays and absent arrays compare equal.
func LoadConfig(path string) (model.Config, error) {
	if path == "" {
		return nil, errors.New("testsupport: config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read config: %w", err)
	}
	cfg, err := model.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("testsupport: decode config: %w", err)
	}
	return cfg, nil
}

// WriteConfig writes a config golden when UPDATE_GOLDENS is enabled, using
// the same encoder the exporter uses.
func WriteConfig(t *testing.T, path string, cfg model.Config) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	var buf bytes.Buffer
	if err := model.Encode(&buf, cfg); err != nil {
		t.Fatalf("encode config: %v", err)
	}
	WriteMaybeGolden(t, path, buf.Bytes())
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context carrying a no-op logger.
func Context() context.Context {
	return logging.WithLogger(context.Background(), &logging.Nop)
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/goliatone/go-planconfig/pkg/diagnostic"
	"github.com/goliatone/go-planconfig/pkg/model"
	"github.com/goliatone/go-planconfig/pkg/store"
)

func printDiagnostics(w io.Writer, diags []diagnostic.Diagnostic, noColor bool) {
	warn := color.New(color.FgYellow)
	info := color.New(color.FgCyan)
	if noColor {
		warn.DisableColor()
		info.DisableColor()
	}
	for _, d := range diags {
		c := info
		if d.Severity == diagnostic.SeverityWarning {
			c = warn
		}
		_, _ = c.Fprintf(w, "%s: %s\n", d.Severity, d.String())
	}
}

// parsePlanType upper-cases raw. Plan types outside the built-in set are
// accepted and reported back through known=false.
func parsePlanType(raw string) (pt model.PlanType, known bool, err error) {
	if pt, err := model.ParsePlanType(raw); err == nil {
		return pt, true, nil
	}
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", false, errors.New("plan type is required")
	}
	return model.PlanType(trimmed), false, nil
}

func writeConfigFile(path string, cfg model.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := model.Encode(f, cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// openStore restores the snapshot at path, or returns a fresh store when the
// file does not exist yet.
func openStore(path string) (*store.Store, error) {
	st := store.New()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}
	if err := st.Restore(data); err != nil {
		return nil, err
	}
	return st, nil
}

func saveStore(path string, st *store.Store) error {
	data, err := st.Snapshot()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", path, err)
	}
	return nil
}

package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errEmptyLocation
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("expand home: %w", err)
		}
		path = filepath.Join(home, rest)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if err := checkUpload(info.IsDir(), info.Size()); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

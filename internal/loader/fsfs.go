package loader

import (
	"context"
	"errors"
	"io/fs"
	"strings"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if files == nil {
		return nil, errors.New("no file system configured")
	}
	name = strings.TrimPrefix(strings.TrimSpace(name), "./")
	if name == "" {
		return nil, errEmptyLocation
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := fs.Stat(files, name)
	if err != nil {
		return nil, err
	}
	if err := checkUpload(info.IsDir(), info.Size()); err != nil {
		return nil, err
	}
	return fs.ReadFile(files, name)
}

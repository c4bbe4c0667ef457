package adapters

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

func extOf(src sources.Source) string {
	if src == nil {
		return ""
	}
	loc := src.Location()
	if i := strings.IndexAny(loc, "?#"); i >= 0 {
		loc = loc[:i]
	}
	return strings.ToLower(filepath.Ext(loc))
}

package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

// MaxUploadSize caps the size of a single upload.
const MaxUploadSize = 32 << 20

var errEmptyLocation = errors.New("location is empty")

func checkUpload(isDir bool, size int64) error {
	if isDir {
		return errors.New("is a directory")
	}
	if size > MaxUploadSize {
		return fmt.Errorf("upload is %d bytes, limit is %d", size, MaxUploadSize)
	}
	return nil
}

// Loader implements sources.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ sources.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options sources.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a raw upload from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src sources.Source) (sources.Document, error) {
	if src == nil {
		return sources.Document{}, errors.New("loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case sources.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case sources.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case sources.SourceKindURL:
		if !l.allowHTTP {
			return sources.Document{}, errors.New("loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return sources.Document{}, fmt.Errorf("loader: %s: %w", src.Location(), err)
	}

	return sources.NewDocument(src, data)
}

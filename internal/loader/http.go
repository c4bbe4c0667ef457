package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"resty.dev/v3"
)

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if url == "" {
		return nil, errEmptyLocation
	}

	reqCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	rc := resty.NewWithClient(client)
	defer rc.Close()

	resp, err := rc.R().
		SetContext(reqCtx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, err
	}
	body := resp.RawResponse.Body
	defer func() {
		_ = body.Close()
	}()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	data, err := io.ReadAll(io.LimitReader(body, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if err := checkUpload(false, int64(len(data))); err != nil {
		return nil, err
	}
	return data, nil
}

package figma

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"resty.dev/v3"

	"github.com/goliatone/go-planconfig/pkg/logging"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// DefaultBaseURL is the public Figma REST endpoint.
const DefaultBaseURL = "https://api.figma.com"

const tokenHeader = "X-Figma-Token"

// Client fetches design fields from the Figma REST API. The zero value talks
// to DefaultBaseURL with http.DefaultClient. Without a Token, Fields returns
// MockFields so the pipeline can be exercised offline.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// Fields fetches nodeID from the file referenced by link and extracts its
// design fields.
func (c *Client) Fields(ctx context.Context, link, nodeID string) (*sources.DesignData, error) {
	if ctx == nil {
		return nil, errors.New("figma: context is nil")
	}
	fileKey, err := ParseLink(link)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	data := &sources.DesignData{Link: link, NodeID: nodeID}

	if c == nil || strings.TrimSpace(c.Token) == "" {
		logger.Debug().Str("file_key", fileKey).Msg("figma token not set, using mock extraction")
		data.Fields = MockFields()
		return data, nil
	}
	if strings.TrimSpace(nodeID) == "" {
		return nil, errors.New("figma: node id is required")
	}

	client := c.restClient()
	defer client.Close()

	var payload NodesResponse
	resp, err := client.R().
		SetContext(ctx).
		SetHeader(tokenHeader, c.Token).
		SetPathParam("fileKey", fileKey).
		SetQueryParam("ids", nodeID).
		SetResult(&payload).
		Get("/v1/files/{fileKey}/nodes")
	if err != nil {
		return nil, fmt.Errorf("figma: fetch nodes: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("figma: fetch nodes: unexpected status %d", resp.StatusCode())
	}

	fields, err := payload.Fields(nodeID)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("file_key", fileKey).
		Str("node_id", nodeID).
		Int("fields", len(fields)).
		Msg("extracted figma fields")

	data.Fields = fields
	return data, nil
}

func (c *Client) restClient() *resty.Client {
	var client *resty.Client
	if c.HTTP != nil {
		client = resty.NewWithClient(c.HTTP)
	} else {
		client = resty.New()
	}
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return client.
		SetBaseURL(base).
		SetHeader("Accept", "application/json")
}

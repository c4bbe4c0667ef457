package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-planconfig/pkg/figma"
	"github.com/goliatone/go-planconfig/pkg/sources"
)

// designFieldPayload accepts both key spellings seen in design exports.
type designFieldPayload struct {
	Label         string `json:"label" yaml:"label"`
	Type          string `json:"type" yaml:"type"`
	Kind          string `json:"kind" yaml:"kind"`
	Placeholder   string `json:"placeholder" yaml:"placeholder"`
	HelpText      string `json:"helpText" yaml:"helpText"`
	HelpTextSnake string `json:"help_text" yaml:"help_text"`
	Order         int    `json:"order" yaml:"order"`
	Section       string `json:"section" yaml:"section"`
}

type designPayload struct {
	Link   string               `json:"link" yaml:"link"`
	NodeID string               `json:"nodeId" yaml:"nodeId"`
	Fields []designFieldPayload `json:"fields" yaml:"fields"`
}

type designJSON struct{}

// NewDesignJSON decodes design extracts written as JSON or YAML, either a
// bare list of fields or an object {link, nodeId, fields}. A field without
// an order takes its 1-based position.
func NewDesignJSON() Adapter {
	return designJSON{}
}

func (designJSON) Name() string { return "design-json" }

func (designJSON) Role() Role { return RoleDesign }

func (designJSON) Detect(src sources.Source, raw []byte) bool {
	if figma.IsNodesResponse(raw) {
		return false
	}
	switch extOf(src) {
	case ".json", ".yaml", ".yml":
		return true
	}
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func (designJSON) Decode(_ context.Context, doc sources.Document) (sources.Bundle, error) {
	raw := doc.Raw()

	var payload designPayload
	if err := unmarshalJSONOrYAML(raw, &payload); err != nil || payload.Fields == nil {
		var list []designFieldPayload
		if listErr := unmarshalJSONOrYAML(raw, &list); listErr != nil {
			if err != nil {
				return sources.Bundle{}, err
			}
			return sources.Bundle{}, errors.New("design document has no fields")
		}
		payload = designPayload{Fields: list}
	}

	fields := make([]sources.DesignField, 0, len(payload.Fields))
	for i, f := range payload.Fields {
		kind := f.Type
		if kind == "" {
			kind = f.Kind
		}
		help := f.HelpText
		if help == "" {
			help = f.HelpTextSnake
		}
		order := f.Order
		if order == 0 {
			order = i + 1
		}
		fields = append(fields, sources.DesignField{
			Label:       strings.TrimSpace(f.Label),
			Kind:        kind,
			Placeholder: f.Placeholder,
			HelpText:    help,
			Order:       order,
			Section:     f.Section,
		})
	}

	return sources.Bundle{Design: &sources.DesignData{
		Link:   payload.Link,
		NodeID: payload.NodeID,
		Fields: fields,
	}}, nil
}

// unmarshalJSONOrYAML tries JSON first and falls back to YAML.
func unmarshalJSONOrYAML(raw []byte, out any) error {
	jsonErr := json.Unmarshal(raw, out)
	if jsonErr == nil {
		return nil
	}
	if yamlErr := yaml.Unmarshal(raw, out); yamlErr != nil {
		return fmt.Errorf("parse design document: %w", errors.Join(jsonErr, yamlErr))
	}
	return nil
}

type figmaNodes struct{}

// NewFigmaNodes decodes a saved Figma GET /v1/files/:key/nodes response.
func NewFigmaNodes() Adapter {
	return figmaNodes{}
}

func (figmaNodes) Name() string { return "figma-nodes" }

func (figmaNodes) Role() Role { return RoleDesign }

func (figmaNodes) Detect(_ sources.Source, raw []byte) bool {
	return figma.IsNodesResponse(raw)
}

func (figmaNodes) Decode(_ context.Context, doc sources.Document) (sources.Bundle, error) {
	fields, err := figma.DecodeNodes(doc.Raw(), "")
	if err != nil {
		return sources.Bundle{}, err
	}
	return sources.Bundle{Design: &sources.DesignData{Fields: fields}}, nil
}

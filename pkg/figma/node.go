package figma

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/goliatone/go-planconfig/pkg/sources"
)

// NodeTypeText marks text layers, the only nodes that can become labels.
const NodeTypeText = "TEXT"

// Node is the subset of a Figma document node used for extraction.
type Node struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Type       string `json:"type,omitempty"`
	Characters string `json:"characters,omitempty"`
	Children   []Node `json:"children,omitempty"`
}

// NodeEntry is one value of the nodes map in a nodes response.
type NodeEntry struct {
	Document *Node `json:"document"`
}

// NodesResponse mirrors GET /v1/files/:key/nodes.
type NodesResponse struct {
	Name  string                `json:"name,omitempty"`
	Nodes map[string]*NodeEntry `json:"nodes"`
}

// IsNodesResponse reports whether raw looks like a saved nodes response.
func IsNodesResponse(raw []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	_, ok := probe["nodes"]
	return ok
}

// DecodeNodes parses a saved nodes response and extracts its fields. With a
// nodeID only that node is used; otherwise every node is walked in id order
// and field order continues across nodes.
func DecodeNodes(raw []byte, nodeID string) ([]sources.DesignField, error) {
	var resp NodesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("figma: decode nodes: %w", err)
	}
	return resp.Fields(nodeID)
}

// Fields extracts design fields from the response.
func (r NodesResponse) Fields(nodeID string) ([]sources.DesignField, error) {
	if nodeID != "" {
		entry, ok := r.Nodes[nodeID]
		if !ok || entry == nil || entry.Document == nil {
			return nil, fmt.Errorf("figma: node %q not found in response", nodeID)
		}
		return ExtractFields(*entry.Document), nil
	}

	ids := make([]string, 0, len(r.Nodes))
	for id, entry := range r.Nodes {
		if entry != nil && entry.Document != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	ex := &extractor{order: 1}
	for _, id := range ids {
		ex.walk(*r.Nodes[id].Document, "")
	}
	return ex.fields, nil
}

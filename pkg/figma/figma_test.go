package figma_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-planconfig/pkg/figma"
	"github.com/goliatone/go-planconfig/pkg/sources"
	"github.com/goliatone/go-planconfig/pkg/testsupport"
)

func TestParseLink(t *testing.T) {
	cases := map[string]string{
		"https://www.figma.com/file/AbC123xyz/Plan-Builder?node-id=1-2": "AbC123xyz",
		"https://www.figma.com/design/Zz9/Plans":                         "Zz9",
		"figma.com/file/key42":                                           "key42",
	}
	for link, want := range cases {
		got, err := figma.ParseLink(link)
		if err != nil {
			t.Fatalf("parse %q: %v", link, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %q, got %q", link, want, got)
		}
	}

	if _, err := figma.ParseLink("https://example.com/boards/1"); !errors.Is(err, figma.ErrInvalidLink) {
		t.Fatalf("expected ErrInvalidLink, got %v", err)
	}
}

var wantNodeFields = []sources.DesignField{
	{Label: "Carrier", Kind: "text", Order: 1, Section: "planDetails"},
	{Label: "Plan Sub-Type", Kind: "text", Order: 2, Section: "planDetails"},
	{Label: "premium amount", Kind: "text", Order: 3, Section: "pricing"},
	{Label: "Rx & Drugs", Kind: "text", Order: 4, Section: "pricing"},
}

func TestDecodeNodes(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "nodes_response.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	if !figma.IsNodesResponse(raw) {
		t.Fatalf("expected fixture to be detected as nodes response")
	}

	for _, nodeID := range []string{"12:34", ""} {
		fields, err := figma.DecodeNodes(raw, nodeID)
		if err != nil {
			t.Fatalf("decode nodes %q: %v", nodeID, err)
		}
		if diff := cmp.Diff(wantNodeFields, fields); diff != "" {
			t.Fatalf("fields mismatch for %q (-want +got):\n%s", nodeID, diff)
		}
	}

	if _, err := figma.DecodeNodes(raw, "99:1"); err == nil {
		t.Fatalf("expected error for missing node")
	}
}

func TestExtractFields_RootTextUsesDefaultSection(t *testing.T) {
	fields := figma.ExtractFields(figma.Node{Type: figma.NodeTypeText, Characters: "Deductible:"})
	want := []sources.DesignField{{Label: "Deductible", Kind: "text", Order: 1, Section: "default"}}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFields_StripsMarkup(t *testing.T) {
	fields := figma.ExtractFields(figma.Node{
		Name: "form",
		Children: []figma.Node{
			{Type: figma.NodeTypeText, Characters: "Network <b>Tier</b>:"},
		},
	})
	if len(fields) != 1 || fields[0].Label != "Network Tier" {
		t.Fatalf("unexpected fields %+v", fields)
	}
}

func TestClient_FieldsWithoutTokenReturnsMock(t *testing.T) {
	client := &figma.Client{}
	data, err := client.Fields(testsupport.Context(), "https://www.figma.com/file/AbC123/x", "1:2")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if diff := cmp.Diff(figma.MockFields(), data.Fields); diff != "" {
		t.Fatalf("mock mismatch (-want +got):\n%s", diff)
	}
	if data.Link == "" || data.NodeID != "1:2" {
		t.Fatalf("expected provenance on design data, got %+v", data)
	}
}

func TestClient_FieldsRejectsInvalidLink(t *testing.T) {
	client := &figma.Client{}
	if _, err := client.Fields(testsupport.Context(), "not a link", "1:2"); !errors.Is(err, figma.ErrInvalidLink) {
		t.Fatalf("expected ErrInvalidLink, got %v", err)
	}
}

func TestClient_FieldsFetchesNodes(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "nodes_response.json"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	var gotPath, gotIDs, gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotIDs = r.URL.Query().Get("ids")
		gotToken = r.Header.Get("X-Figma-Token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
	}))
	t.Cleanup(server.Close)

	client := &figma.Client{BaseURL: server.URL, Token: "secret", HTTP: server.Client()}
	data, err := client.Fields(testsupport.Context(), "https://www.figma.com/file/AbC123/x", "12:34")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}

	if gotPath != "/v1/files/AbC123/nodes" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotIDs != "12:34" {
		t.Fatalf("unexpected ids query %q", gotIDs)
	}
	if gotToken != "secret" {
		t.Fatalf("expected token header, got %q", gotToken)
	}
	if diff := cmp.Diff(wantNodeFields, data.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_FieldsSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":403,"err":"Invalid token"}`, http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := &figma.Client{BaseURL: server.URL, Token: "bad", HTTP: server.Client()}
	if _, err := client.Fields(context.Background(), "https://www.figma.com/file/AbC123/x", "12:34"); err == nil {
		t.Fatalf("expected error for 403 response")
	}
}

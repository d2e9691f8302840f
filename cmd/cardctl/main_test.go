package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matst80/slask-card/pkg/card"
	"github.com/matst80/slask-card/pkg/common/jsoncompat"
	"github.com/matst80/slask-card/pkg/types"
)

const capProduct = `{
	"url_key": "cap",
	"type_id": "configurable",
	"variants": [
		{"parameters": {"color": "blue", "size": "M"}, "product": {"thumbnail": {"path": "/b.jpg"}, "price": 10}},
		{"parameters": {"color": "red", "size": "M"}, "product": {"thumbnail": {"path": "/r.jpg"}, "price": 12}}
	]
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCardCommand(t *testing.T) {
	out, err := run(t, capProduct, "card", "-f", "color=red", "--media", "https://cdn.example")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	var c card.Card
	if err := jsoncompat.Unmarshal([]byte(out), &c); err != nil {
		t.Fatalf("Expected card json, got %v: %s", err, out)
	}
	if c.Selection.Index != 1 || c.Image != "https://cdn.example/r.jpg" || c.Price.Value != 12 {
		t.Errorf("Unexpected card %+v", c)
	}
}

func TestResolveCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cap.json")
	if err := os.WriteFile(path, []byte(capProduct), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "resolve", path, "-q", "size=M&color=red")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	var sel types.ResolvedSelection
	if err := jsoncompat.Unmarshal([]byte(out), &sel); err != nil {
		t.Fatalf("Expected selection json, got %v", err)
	}
	if sel.Index != 1 || sel.Parameters.Encode() != "color=red&size=M" {
		t.Errorf("Unexpected selection %+v", sel)
	}
}

func TestLinkCommand(t *testing.T) {
	out, err := run(t, capProduct, "link", "-", "-f", "color=blue", "--reviews", "--href")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.TrimSpace(out) != "/product/cap?color=blue#reviews" {
		t.Errorf("Unexpected href %q", out)
	}
}

func TestLinkCommandNotLinkable(t *testing.T) {
	if _, err := run(t, `{"type_id": "simple", "sku": "x"}`, "link"); err == nil {
		t.Error("Expected error for product without url key")
	}
}

func TestBadFilter(t *testing.T) {
	if _, err := run(t, capProduct, "resolve", "-f", "color"); err == nil {
		t.Error("Expected error for malformed filter")
	}
	if _, err := run(t, `{"url_key": "a/b"}`, "card"); err == nil {
		t.Error("Expected validation error")
	}
}

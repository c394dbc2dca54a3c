package openapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateSpec(t *testing.T) {
	api := NewSnippetAPI(http.NewServeMux(), "1.0.0")

	spec, err := GenerateSpec(api, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	specStr := string(spec)
	for _, want := range []string{"openapi", "Overmind Guide Snippets", "/api/snippets/{language}/{framework}"} {
		if !strings.Contains(specStr, want) {
			t.Errorf("Expected spec to contain %q", want)
		}
	}
}

func TestGenerateSpecYAML(t *testing.T) {
	api := NewSnippetAPI(http.NewServeMux(), "1.0.0")

	spec, err := GenerateSpec(api, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(string(spec), "openapi:") {
		t.Error("Expected YAML spec to contain 'openapi:' key")
	}
}

func TestGenerateSpecToFile(t *testing.T) {
	api := NewSnippetAPI(http.NewServeMux(), "1.0.0")
	outputPath := filepath.Join(t.TempDir(), "docs", "openapi.json")

	if err := GenerateSpecToFile(api, outputPath, false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Expected spec file to exist: %v", err)
	}
	if !strings.Contains(string(data), "get-snippets") {
		t.Error("Expected spec file to include the get-snippets operation")
	}
}

func TestGetRouteCount(t *testing.T) {
	api := NewSnippetAPI(http.NewServeMux(), "1.0.0")

	if count := GetRouteCount(api); count != 3 {
		t.Errorf("Expected 3 routes, got %d", count)
	}
}

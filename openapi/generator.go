package openapi

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/barisgit/overmind-guide/internal/api"
	"github.com/barisgit/overmind-guide/internal/snippets"
)

// NewSnippetAPI builds the snippet API on a net/http mux
func NewSnippetAPI(mux *http.ServeMux, version string) huma.API {
	config := huma.DefaultConfig("Overmind Guide Snippets", version)
	humaAPI := humago.New(mux, config)
	api.Register(humaAPI, snippets.Default, version)
	return humaAPI
}

// GenerateSpec returns the OpenAPI description as JSON, or YAML when asYAML is set
func GenerateSpec(api huma.API, asYAML bool) ([]byte, error) {
	if asYAML {
		return api.OpenAPI().YAML()
	}
	return api.OpenAPI().MarshalJSON()
}

// GenerateSpecToFile writes the OpenAPI description of api to outputPath
func GenerateSpecToFile(api huma.API, outputPath string, asYAML bool) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	spec, err := GenerateSpec(api, asYAML)
	if err != nil {
		return fmt.Errorf("failed to generate OpenAPI spec: %w", err)
	}

	if err := os.WriteFile(outputPath, spec, 0644); err != nil {
		return fmt.Errorf("failed to save OpenAPI spec to %s: %w", outputPath, err)
	}

	return nil
}

// GetRouteCount returns the number of GET routes in the API
func GetRouteCount(api huma.API) int {
	openAPISpec := api.OpenAPI()
	if openAPISpec == nil || openAPISpec.Paths == nil {
		return 0
	}

	routeCount := 0
	for _, pathItem := range openAPISpec.Paths {
		if pathItem != nil && pathItem.Get != nil {
			routeCount++
		}
	}
	return routeCount
}

// Package api exposes the guide snippet catalog over HTTP so the
// documentation site can fetch example files at render time.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/barisgit/overmind-guide/internal/snippets"
)

// SnippetFile is the wire form of a snippets.File
type SnippetFile struct {
	FileName string `json:"fileName" example:"overmind/index.ts" doc:"File path relative to the project source root"`
	Code     string `json:"code" doc:"Literal source text"`
}

// SnippetInput selects a catalog entry
type SnippetInput struct {
	Language  string `path:"language" enum:"javascript,typescript" doc:"Language mode of the example"`
	Framework string `path:"framework" example:"react" doc:"UI framework of the example"`
}

// SnippetResponse returns the ordered files of a catalog entry
type SnippetResponse struct {
	Body struct {
		Language  string        `json:"language" example:"typescript"`
		Framework string        `json:"framework" example:"react"`
		Files     []SnippetFile `json:"files"`
	}
}

// IndexResponse lists the frameworks available per language mode
type IndexResponse struct {
	Body struct {
		Frameworks map[string][]string `json:"frameworks" doc:"Framework names keyed by language mode"`
	}
}

// HealthResponse represents a standard health check response
type HealthResponse struct {
	Body struct {
		Status  string `json:"status" example:"ok" doc:"Service status"`
		Version string `json:"version,omitempty" example:"1.0.0" doc:"Optional service version"`
	}
}

// Register adds the snippet operations for catalog to api
func Register(api huma.API, catalog *snippets.Catalog, version string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-snippets",
		Method:      http.MethodGet,
		Path:        "/api/snippets",
		Summary:     "List snippet frameworks",
		Tags:        []string{"Snippets"},
	}, func(ctx context.Context, input *struct{}) (*IndexResponse, error) {
		resp := &IndexResponse{}
		resp.Body.Frameworks = map[string][]string{
			string(snippets.JavaScript): catalog.Frameworks(false),
			string(snippets.TypeScript): catalog.Frameworks(true),
		}
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-snippets",
		Method:      http.MethodGet,
		Path:        "/api/snippets/{language}/{framework}",
		Summary:     "Get example files",
		Description: "Returns the example files for a language mode and framework in display order",
		Tags:        []string{"Snippets"},
	}, func(ctx context.Context, input *SnippetInput) (*SnippetResponse, error) {
		isTypeScript := input.Language == string(snippets.TypeScript)

		files, ok := catalog.Lookup(isTypeScript, input.Framework)
		if !ok {
			return nil, huma.Error404NotFound(fmt.Sprintf("no %s snippets for framework %s", input.Language, input.Framework))
		}

		resp := &SnippetResponse{}
		resp.Body.Language = input.Language
		resp.Body.Framework = input.Framework
		resp.Body.Files = make([]SnippetFile, len(files))
		for i, f := range files {
			resp.Body.Files[i] = SnippetFile{FileName: f.FileName, Code: f.Code}
		}
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health Check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*HealthResponse, error) {
		resp := &HealthResponse{}
		resp.Body.Status = "ok"
		resp.Body.Version = version
		return resp, nil
	})
}

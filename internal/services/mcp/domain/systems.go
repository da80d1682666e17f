package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/numerals/registry"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	systemsResourceURI = "numerals://systems"
	systemURIPrefix    = systemsResourceURI + "/"
)

// ListSystemsInput represents the MCP tool input for listing systems.
type ListSystemsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"optional AIP-160 filter over id, name, culture, type and base, for example base = 20"`
}

// SystemSummary is the compact listing entry for a numeral system.
type SystemSummary struct {
	ID      string `json:"id" jsonschema:"system id"`
	Name    string `json:"name" jsonschema:"display name"`
	Culture string `json:"culture" jsonschema:"originating culture"`
	Base    int    `json:"base" jsonschema:"radix"`
	Type    string `json:"type" jsonschema:"descriptive system type"`
}

// ListSystemsResult represents the MCP tool output for listing systems.
type ListSystemsResult struct {
	Systems []SystemSummary `json:"systems" jsonschema:"matching numeral systems in catalog order"`
}

// ListSystemsTool defines the MCP tool schema for listing systems.
func ListSystemsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_numeral_systems",
		Description: "Lists the numeral systems in the catalog, optionally narrowed by a filter expression",
	}
}

// ListSystemsHandler lists systems through the numerals service.
func ListSystemsHandler(service *app.Service) mcp.ToolHandlerFor[ListSystemsInput, ListSystemsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListSystemsInput) (*mcp.CallToolResult, ListSystemsResult, error) {
		if service == nil {
			return nil, ListSystemsResult{}, fmt.Errorf("numerals service is not configured")
		}
		systems, err := service.FilterSystems(ctx, input.Filter)
		if err != nil {
			return nil, ListSystemsResult{}, err
		}
		out := ListSystemsResult{Systems: make([]SystemSummary, 0, len(systems))}
		for _, system := range systems {
			out.Systems = append(out.Systems, summarize(system))
		}
		return nil, out, nil
	}
}

func summarize(system registry.System) SystemSummary {
	return SystemSummary{
		ID:      system.ID,
		Name:    system.Name,
		Culture: system.Culture,
		Base:    system.Base,
		Type:    system.Type,
	}
}

// SystemsResource describes the catalog listing resource.
func SystemsResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "numeral_systems",
		Title:       "Numeral systems",
		Description: "The numeral system catalog as JSON",
		MIMEType:    "application/json",
		URI:         systemsResourceURI,
	}
}

// SystemsResourceHandler returns the full catalog.
func SystemsResourceHandler(service *app.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if service == nil {
			return nil, fmt.Errorf("numerals service is not configured")
		}
		uri := systemsResourceURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		payload := ListSystemsResult{Systems: []SystemSummary{}}
		for _, system := range service.Systems(ctx, registry.Query{}) {
			payload.Systems = append(payload.Systems, summarize(system))
		}
		return jsonResource(uri, payload)
	}
}

// SystemResourceTemplate describes the per-system detail resource.
func SystemResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "numeral_system",
		Title:       "Numeral system",
		Description: "One numeral system with its rules, symbols and examples. URI format: numerals://systems/{id}",
		MIMEType:    "application/json",
		URITemplate: systemsResourceURI + "/{id}",
	}
}

// SystemResourceHandler returns one system by the id in the URI.
func SystemResourceHandler(service *app.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if service == nil {
			return nil, fmt.Errorf("numerals service is not configured")
		}
		if req == nil || req.Params == nil || req.Params.URI == "" {
			return nil, fmt.Errorf("system id is required; use URI format numerals://systems/{id}")
		}
		uri := req.Params.URI
		id, err := parseSystemIDFromURI(uri)
		if err != nil {
			return nil, err
		}
		system, err := service.System(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("numeral system %q not found: %w", id, err)
		}
		return jsonResource(uri, system)
	}
}

// parseSystemIDFromURI extracts the id from numerals://systems/{id}.
func parseSystemIDFromURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, systemURIPrefix) {
		return "", fmt.Errorf("invalid URI format: expected numerals://systems/{id}")
	}
	id := strings.TrimSpace(strings.TrimPrefix(uri, systemURIPrefix))
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("system id is required in URI")
	}
	return id, nil
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}

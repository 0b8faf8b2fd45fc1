package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for apuntes resources.
	uriScheme = "apuntes://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "courses",
		Name:        "courses",
		Description: "The course catalog used for name matching",
		MIMEType:    "application/json",
	}, s.handleCoursesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "items/{itemId}",
		Name:        "item",
		Description: "Classification of a single harvested file",
		MIMEType:    "application/json",
	}, s.handleItemResource)
}

// handleCoursesResource returns the course catalog.
func (s *Server) handleCoursesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return jsonResult(req.Params.URI, "[]"), nil
	}

	courses, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	type courseInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	infos := make([]courseInfo, len(courses))
	for i, c := range courses {
		infos[i] = courseInfo{ID: c.ID, Name: c.Name}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling courses: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

// handleItemResource returns one parsed item.
func (s *Server) handleItemResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Items == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	itemID := extractItemID(req.Params.URI)
	if itemID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	item, err := s.ports.Items.Get(ctx, itemID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	data, err := json.MarshalIndent(toItemOutput(item), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling item: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractItemID extracts the item ID from a URI like apuntes://items/{itemId}.
func extractItemID(uri string) string {
	const prefix = uriScheme + "items/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

const defaultListLimit = 50

// ClassifyInput is the input schema for the classify_path tool.
type ClassifyInput struct {
	Paths []string `json:"paths" jsonschema:"slash-delimited file paths to classify"`
}

// ClassifyOutput is the output schema for the classify_path tool.
type ClassifyOutput struct {
	Items []ItemOutput `json:"items"`
}

// ListItemsInput is the input schema for the list_items tool.
type ListItemsInput struct {
	Type   string `json:"type,omitempty" jsonschema:"only items tagged with this content type (exam, guide, ...)"`
	Course string `json:"course,omitempty" jsonschema:"only items associated with this course id"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of items to return (default 50)"`
}

// ListItemsOutput is the output schema for the list_items tool.
type ListItemsOutput struct {
	Items []ItemOutput `json:"items"`
	Count int          `json:"count"`
}

// ItemOutput represents a single classified item.
type ItemOutput struct {
	ID      string   `json:"id,omitempty"`
	Path    string   `json:"path"`
	Name    string   `json:"name"`
	Link    string   `json:"link,omitempty"`
	Owner   string   `json:"owner,omitempty"`
	Types   []string `json:"types"`
	Courses []string `json:"courses"`
	Date    string   `json:"date,omitempty"`
}

func toItemOutput(item *domain.ParsedItem) ItemOutput {
	out := ItemOutput{
		ID:      item.ID,
		Path:    item.Path,
		Name:    item.Name,
		Link:    item.Link,
		Owner:   item.Owner,
		Types:   make([]string, len(item.Types)),
		Courses: append([]string{}, item.Courses...),
	}
	for i, t := range item.Types {
		out.Types[i] = string(t)
	}
	if item.Date != nil {
		out.Date = item.Date.Format("2006-01-02")
	}
	return out
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_path",
		Description: "Guess content types, courses and exam date for file paths of course material",
	}, s.handleClassify)

	if s.ports.Items != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_items",
			Description: "List classified course material, optionally filtered by content type or course",
		}, s.handleListItems)
	}
}

func (s *Server) handleClassify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	if len(input.Paths) == 0 {
		return nil, ClassifyOutput{}, errors.New("at least one path is required")
	}

	items, err := s.ports.Parse.ClassifyPaths(ctx, input.Paths)
	if err != nil {
		return nil, ClassifyOutput{}, err
	}

	output := ClassifyOutput{Items: make([]ItemOutput, len(items))}
	for i := range items {
		output.Items[i] = toItemOutput(&items[i])
	}
	return nil, output, nil
}

func (s *Server) handleListItems(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListItemsInput,
) (*mcp.CallToolResult, ListItemsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	items, err := s.ports.Items.List(ctx, domain.ParsedItemFilter{
		Type:     domain.ContentType(input.Type),
		CourseID: input.Course,
		Limit:    limit,
	})
	if err != nil {
		return nil, ListItemsOutput{}, err
	}

	output := ListItemsOutput{
		Items: make([]ItemOutput, len(items)),
		Count: len(items),
	}
	for i := range items {
		output.Items[i] = toItemOutput(&items[i])
	}
	return nil, output, nil
}

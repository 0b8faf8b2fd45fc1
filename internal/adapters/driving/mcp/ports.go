package mcp

import (
	"github.com/custodia-labs/apuntes/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Parse classifies ad-hoc paths.
	Parse driving.ParseService

	// Items reads stored classification results.
	Items driving.ItemService

	// Catalog exposes the course catalog.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Parse == nil {
		return ErrMissingParseService
	}
	// Items and Catalog are optional; their tools and resources degrade.
	return nil
}

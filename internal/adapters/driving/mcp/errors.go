// Package mcp provides an MCP (Model Context Protocol) server adapter for apuntes.
// It lets AI assistants classify paths and browse the parsed course material.
package mcp

import "errors"

// ErrMissingParseService is returned when the parse service is not provided.
var ErrMissingParseService = errors.New("mcp: parse service is required")

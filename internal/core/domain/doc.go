// Package domain defines the core business entities for apuntes.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawItem: A file discovered in the remote storage tree
//   - Course: An entry of the course catalog
//   - ParsedItem: The academic metadata derived from a RawItem's path
//   - ContentType: The closed set of content tags a ParsedItem may carry
//   - ParseReport: The diagnostics of a full classification pass
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

package domain

import "time"

// ItemKind distinguishes folders from files in the harvested tree.
type ItemKind string

const (
	// KindFolder is a directory node of the remote tree.
	KindFolder ItemKind = "folder"

	// KindFile is a leaf node of the remote tree.
	KindFile ItemKind = "file"
)

// RemoteNode is a folder or file as reported by the storage provider.
type RemoteNode struct {
	// ID is the provider-assigned identifier.
	ID string

	// Name is the display name (one path segment).
	Name string

	// Link is the web URI for the node.
	Link string

	// Owner identifies the node's owner (an e-mail address for Drive).
	Owner string

	// Kind tells folders apart from files.
	Kind ItemKind
}

// RawItem is a harvested file as stored by the crawler.
// It is immutable input to the classification pass.
type RawItem struct {
	// Path is the slash-delimited path from the crawl root, as authored.
	Path string

	// ID is the origin-assigned, globally unique identifier.
	ID string

	// Link is the file's URI.
	Link string

	// Owner identifies the file's owner.
	Owner string
}

// Course is an entry of the course catalog.
type Course struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ParsedItem is the structured record derived from a RawItem.
// It is created once per RawItem and never mutated after classification.
type ParsedItem struct {
	// Path is the normalised path.
	Path string

	// Name is the last segment of the normalised path.
	Name string

	ID    string
	Link  string
	Owner string

	// Types holds the content tags in catalog priority order, without duplicates.
	Types []ContentType

	// Courses holds course identifiers in discovery order, without duplicates.
	Courses []string

	// Date is set only when Types contains ContentExam.
	Date *time.Time
}

// HasType reports whether the item carries the given content tag.
func (p *ParsedItem) HasType(t ContentType) bool {
	for _, have := range p.Types {
		if have == t {
			return true
		}
	}
	return false
}

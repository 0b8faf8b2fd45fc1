package domain

import "time"

// Misses records which dimensions of a single item could not be resolved.
type Misses struct {
	Type   bool
	Course bool
	Date   bool
}

// Count returns the number of unresolved dimensions.
func (m Misses) Count() int {
	n := 0
	for _, miss := range []bool{m.Type, m.Course, m.Date} {
		if miss {
			n++
		}
	}
	return n
}

// ParseReport summarises a full classification pass.
// Unclassified counts are a data-quality signal, not an error.
type ParseReport struct {
	// RunID identifies the pass.
	RunID string

	StartedAt  time.Time
	FinishedAt time.Time

	// Items is the number of raw items classified.
	Items int

	// UnclassifiedTypes counts items with no content tag.
	UnclassifiedTypes int

	// UnclassifiedCourses counts items with no course.
	UnclassifiedCourses int

	// UnclassifiedDates counts exam items with no resolvable year plus items
	// with no content tag, which cannot carry a date either.
	UnclassifiedDates int

	// MalformedDates counts date-like substrings that failed to parse.
	MalformedDates int
}

// Unclassified returns the total number of unclassified instances
// across the three dimensions.
func (r ParseReport) Unclassified() int {
	return r.UnclassifiedTypes + r.UnclassifiedCourses + r.UnclassifiedDates
}

// CrawlStats summarises a crawl of the remote tree.
type CrawlStats struct {
	FoldersListed  int
	FoldersSkipped int
	FilesRecorded  int
	Failures       int
}

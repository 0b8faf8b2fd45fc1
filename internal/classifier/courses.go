package classifier

import (
	"regexp"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// DefaultMaxEditDistance is the largest Levenshtein distance at which a
// path segment is still taken to name a catalog course.
const DefaultMaxEditDistance = 3

// courseCodePattern matches structured course codes such as "61.08".
var courseCodePattern = regexp.MustCompile(`[0-9][0-9]\.[0-9][0-9]`)

type catalogEntry struct {
	id   string
	name string
}

// CourseResolver determines which courses a path belongs to.
//
// Structured codes found anywhere in the path win outright; only when there
// are none is every segment compared against the catalog names.
type CourseResolver struct {
	entries     []catalogEntry
	maxDistance int
}

// CourseResolverOption configures a CourseResolver.
type CourseResolverOption func(*CourseResolver)

// WithMaxEditDistance overrides DefaultMaxEditDistance.
func WithMaxEditDistance(d int) CourseResolverOption {
	return func(r *CourseResolver) {
		r.maxDistance = d
	}
}

// NewCourseResolver builds a resolver over the catalog. Catalog names are
// normalised once here. An empty catalog is valid.
func NewCourseResolver(courses []domain.Course, opts ...CourseResolverOption) *CourseResolver {
	r := &CourseResolver{maxDistance: DefaultMaxEditDistance}
	for _, opt := range opts {
		opt(r)
	}

	r.entries = make([]catalogEntry, 0, len(courses))
	for _, c := range courses {
		name := Normalise(c.Name)
		if name == "" {
			continue
		}
		r.entries = append(r.entries, catalogEntry{id: c.ID, name: name})
	}
	return r
}

// Len returns the number of usable catalog entries.
func (r *CourseResolver) Len() int {
	return len(r.entries)
}

// Resolve returns the course identifiers of a normalised path, without
// duplicates, in order of discovery. The result is empty when neither tier
// finds anything.
func (r *CourseResolver) Resolve(path string) []string {
	if codes := courseCodePattern.FindAllString(path, -1); len(codes) > 0 {
		return dedupe(codes)
	}

	var ids []string
	for _, segment := range Segments(path) {
		if segment == "" {
			continue
		}
		for _, entry := range r.entries {
			if fuzzy.LevenshteinDistance(entry.name, segment) <= r.maxDistance {
				ids = append(ids, entry.id)
			}
		}
	}
	return dedupe(ids)
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

package classifier

import (
	"fmt"

	"github.com/custodia-labs/apuntes/internal/core/domain"
	"github.com/custodia-labs/apuntes/internal/logger"
)

// Result is the classification of a single raw item.
type Result struct {
	Item domain.ParsedItem

	// Misses reports the dimensions that yielded nothing.
	Misses domain.Misses

	// MalformedDates holds date-like substrings that failed to parse.
	// They are folded into the date miss, never returned as errors.
	MalformedDates []error
}

// Classifier runs the type, course and date heuristics in that order.
// It holds only read-only tables and is safe for concurrent use.
type Classifier struct {
	types   *TypeClassifier
	courses *CourseResolver
	dates   *DateExtractor
}

// New builds a Classifier over the built-in type catalog and the given
// course catalog.
func New(courses []domain.Course, opts ...CourseResolverOption) (*Classifier, error) {
	types, err := NewTypeClassifier(DefaultTypeCatalog())
	if err != nil {
		return nil, fmt.Errorf("building type catalog: %w", err)
	}
	return NewWithParts(types, NewCourseResolver(courses, opts...), NewDateExtractor()), nil
}

// NewWithParts assembles a Classifier from explicit components.
func NewWithParts(types *TypeClassifier, courses *CourseResolver, dates *DateExtractor) *Classifier {
	return &Classifier{types: types, courses: courses, dates: dates}
}

// Classify derives a ParsedItem from a RawItem. The date is only looked
// for when the item is tagged as an exam. An item with no type at all also
// counts as a date miss.
func (c *Classifier) Classify(raw domain.RawItem) Result {
	path := Normalise(raw.Path)

	item := domain.ParsedItem{
		Path:  path,
		Name:  LastSegment(path),
		ID:    raw.ID,
		Link:  raw.Link,
		Owner: raw.Owner,
	}
	var res Result

	item.Types = c.types.Classify(path)
	res.Misses.Type = len(item.Types) == 0

	item.Courses = c.courses.Resolve(path)
	res.Misses.Course = len(item.Courses) == 0

	if item.HasType(domain.ContentExam) {
		dr := c.dates.Extract(path)
		for _, err := range dr.Malformed {
			logger.Warn("%s: %v", raw.ID, err)
		}
		res.MalformedDates = dr.Malformed
		item.Date = dr.Date
		res.Misses.Date = dr.Date == nil
	} else {
		res.Misses.Date = res.Misses.Type
	}

	res.Item = item
	return res
}

package domain

// ContentType tags what kind of academic material an item is.
type ContentType string

// Content types, in catalog priority order.
const (
	ContentExam          ContentType = "exam"
	ContentGuide         ContentType = "guide"
	ContentExercise      ContentType = "exercise"
	ContentProject       ContentType = "project"
	ContentTheory        ContentType = "theory"
	ContentSummary       ContentType = "summary"
	ContentBibliography  ContentType = "bibliography"
	ContentSolution      ContentType = "solution"
	ContentCode          ContentType = "code"
	ContentSuggestions   ContentType = "suggestions"
	ContentPolls         ContentType = "polls"
	ContentMiscellaneous ContentType = "miscellaneous"
)

// AllContentTypes returns every content type in catalog priority order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentExam,
		ContentGuide,
		ContentExercise,
		ContentProject,
		ContentTheory,
		ContentSummary,
		ContentBibliography,
		ContentSolution,
		ContentCode,
		ContentSuggestions,
		ContentPolls,
		ContentMiscellaneous,
	}
}

// IsValid reports whether t belongs to the closed enumeration.
func (t ContentType) IsValid() bool {
	for _, known := range AllContentTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the tag name.
func (t ContentType) String() string {
	return string(t)
}

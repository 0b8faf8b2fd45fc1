package domain

// ParsedItemFilter narrows a listing of parsed items.
// Zero values mean "no constraint".
type ParsedItemFilter struct {
	Type     ContentType
	CourseID string
	Limit    int
}

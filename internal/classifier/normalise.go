package classifier

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// PathSeparator splits a path into segments.
const PathSeparator = "/"

// Normalise returns the canonical form of a raw path: every non-ASCII
// character is transliterated to its closest ASCII spelling and the result
// is lowercased. Decomposed input is composed first so that a letter
// followed by combining marks folds like its precomposed form.
func Normalise(path string) string {
	if path == "" {
		return ""
	}
	return strings.ToLower(unidecode.Unidecode(norm.NFC.String(path)))
}

// Segments splits a normalised path on the separator and trims
// surrounding whitespace from every segment.
func Segments(path string) []string {
	parts := strings.Split(path, PathSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// skipSegments drops the first n structural segments.
func skipSegments(segments []string, n int) []string {
	if len(segments) <= n {
		return nil
	}
	return segments[n:]
}

// LastSegment returns the file name part of a normalised path.
func LastSegment(path string) string {
	idx := strings.LastIndex(path, PathSeparator)
	return path[idx+1:]
}

// Package classifier derives academic metadata from harvested file paths.
//
// A path goes through a fixed sequence of heuristics:
//
//   - Normalise: transliterate to ASCII and lowercase
//   - TypeClassifier: bilingual pattern catalog producing content tags
//   - CourseResolver: structured course codes, falling back to fuzzy
//     matching of path segments against the course catalog
//   - DateExtractor: best-effort date for exam-like items
//
// Classification is a pure function of the path and the static tables.
// Per-item misses are returned to the caller instead of being counted here,
// so a Classifier can be shared by concurrent workers.
package classifier

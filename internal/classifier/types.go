package classifier

import (
	"fmt"
	"regexp"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// TypeCatalogVersion identifies the revision of the built-in pattern tables.
const TypeCatalogVersion = 1

// typeSegmentOffset is the number of leading segments (the empty root,
// a top-level category) that never describe content.
const typeSegmentOffset = 2

// Language identifies which pattern table a row belongs to.
type Language string

const (
	// LanguageSpanish rows are evaluated first.
	LanguageSpanish Language = "es"
	// LanguageEnglish rows are evaluated second.
	LanguageEnglish Language = "en"
)

// TypePattern binds a content type to a regular expression in one language.
type TypePattern struct {
	Type     domain.ContentType
	Language Language
	Pattern  string
}

// DefaultTypeCatalog returns the built-in bilingual pattern table.
// Rows are in evaluation order: the Spanish table, then the English one.
func DefaultTypeCatalog() []TypePattern {
	return []TypePattern{
		{domain.ContentExam, LanguageSpanish, `(examen(es)?)|(parcial(es)?)|(final(es)?)|((1|2)(p|c)|(p|c)(1|2))`},
		{domain.ContentGuide, LanguageSpanish, `(problema(s)?)|(guia(s)?)|(practica(s)?)|(tp(e)?(s)?)|(tarea(s)?)`},
		{domain.ContentExercise, LanguageSpanish, `(ejercicio(s)?)`},
		{domain.ContentProject, LanguageSpanish, `(proyecto(s)?|(lab(s)?)|(laboratorio(s)?))`},
		{domain.ContentTheory, LanguageSpanish, `(nota(s)?)|(teori(c)?a(s)?)|(cuaderno(s)?)|(carpeta(s)?)|(apunte(s)?)|(clase(s)?)` +
			`|(unidad(es)?)|(u[0-9])|(presentacion(es)?)|(diapositiva(s)?)`},
		{domain.ContentSummary, LanguageSpanish, `(formula(s)?)|(resumen(es)?)`},
		{domain.ContentBibliography, LanguageSpanish, `(texto(s)?)|(libro(s)?)|(capitulo(s)?)|(bibliografia(s)?)`},
		{domain.ContentSolution, LanguageSpanish, `(solucion(es)?)|(respuesta(s)?)`},
		{domain.ContentCode, LanguageSpanish, `(programa(s)?)|(codigo(s))`},
		{domain.ContentSuggestions, LanguageSpanish, `(sugerencia(s)?)|(recomendacion(es)?)|(tip(s)?)|(clave(s)?)`},
		{domain.ContentPolls, LanguageSpanish, `encuesta(s)?`},
		{domain.ContentMiscellaneous, LanguageSpanish, `material util`},

		{domain.ContentExam, LanguageEnglish, `(exam(s)?)|(partial(s)?)|(final(s)?)|((1|2)(p|c)|(p|c)(1|2))`},
		{domain.ContentGuide, LanguageEnglish, `(problem(s)?)|(guide(s)?)|(practic(s)?)|(tp(e)?(s)?)|(homework(s)?)`},
		{domain.ContentExercise, LanguageEnglish, `(exercise(s)?)`},
		{domain.ContentProject, LanguageEnglish, `(project(s)?|(lab(s)?)|(laboratory(s)?))`},
		{domain.ContentTheory, LanguageEnglish, `(note(book)?(s)?)|(theor(i|y)(c)?(s)?)|(lesson(s)?)` +
			`|(unit(s)?)|(u[0-9])|(presentation(s)?)|(film(s)?)`},
		{domain.ContentSummary, LanguageEnglish, `(formula(e|s)?)|(summar(i|y)(es)?)`},
		{domain.ContentBibliography, LanguageEnglish, `(text(s)?)|(book(s)?)|(chapter(s)?)|(bibliography)`},
		{domain.ContentSolution, LanguageEnglish, `(solution(s)?)|(answers(s)?)`},
		{domain.ContentCode, LanguageEnglish, `(program(s)?)|(code(s))`},
		{domain.ContentSuggestions, LanguageEnglish, `(suggestion(s)?)|(tip(s)?)`},
		{domain.ContentPolls, LanguageEnglish, `poll(s)?`},
		{domain.ContentMiscellaneous, LanguageEnglish, `material util`},
	}
}

type compiledPattern struct {
	contentType domain.ContentType
	re          *regexp.Regexp
}

// TypeClassifier tags a path with every content type whose pattern
// matches at least one of its content segments.
type TypeClassifier struct {
	patterns []compiledPattern
}

// NewTypeClassifier compiles a pattern table. Patterns are matched
// case-insensitively against segment substrings.
func NewTypeClassifier(catalog []TypePattern) (*TypeClassifier, error) {
	patterns := make([]compiledPattern, 0, len(catalog))
	for _, row := range catalog {
		if !row.Type.IsValid() {
			return nil, fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidInput, row.Type)
		}
		re, err := regexp.Compile("(?i)" + row.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling %s pattern for %s: %w", row.Language, row.Type, err)
		}
		patterns = append(patterns, compiledPattern{contentType: row.Type, re: re})
	}
	return &TypeClassifier{patterns: patterns}, nil
}

// Classify returns the content types of a normalised path in catalog
// priority order. The result is empty when nothing matches.
func (c *TypeClassifier) Classify(path string) []domain.ContentType {
	segments := skipSegments(Segments(path), typeSegmentOffset)

	matched := make(map[domain.ContentType]bool)
	for _, p := range c.patterns {
		if matched[p.contentType] {
			continue
		}
		for _, segment := range segments {
			if p.re.MatchString(segment) {
				matched[p.contentType] = true
				break
			}
		}
	}

	var types []domain.ContentType
	for _, t := range domain.AllContentTypes() {
		if matched[t] {
			types = append(types, t)
		}
	}
	return types
}

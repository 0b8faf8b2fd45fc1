// Package catalog reads course catalog files.
//
// A catalog file is YAML with a top-level "courses" list:
//
//	courses:
//	  - id: "75.41"
//	    name: Algoritmos y Programación II
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

// File is the on-disk layout of a catalog.
type File struct {
	Courses []domain.Course `yaml:"courses"`
}

// Load reads a catalog file from disk.
func Load(path string) ([]domain.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	courses, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return courses, nil
}

// Decode parses a catalog document. Unknown fields are rejected.
func Decode(r io.Reader) ([]domain.Course, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrCatalogEmpty
		}
		return nil, fmt.Errorf("parsing catalog: %v: %w", err, domain.ErrInvalidInput)
	}

	if len(file.Courses) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return file.Courses, nil
}

// Encode writes courses in catalog file layout.
func Encode(w io.Writer, courses []domain.Course) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Courses: courses}); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}

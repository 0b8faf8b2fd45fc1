package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify <path>...",
	Short: "Classify paths without storing them",
	Long: `Classifies arbitrary file paths against the stored course catalog and
prints the guesses. Nothing is written to the database.

Paths are interpreted like crawled paths: the first two segments (the empty
root and the top folder) are not used for content type detection.

Example:
  apuntes classify "/Materias/61.08 Álgebra II/Parciales/1P 15-06-2022.pdf"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if parseService == nil {
		return errors.New("parse service not configured")
	}

	items, err := parseService.ClassifyPaths(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("classify failed: %w", err)
	}

	if classifyJSON {
		return outputItemsJSON(cmd, items)
	}
	for i := range items {
		printItem(cmd, &items[i])
	}
	return nil
}

// itemJSON is the JSON shape of a parsed item.
type itemJSON struct {
	ID      string   `json:"id,omitempty"`
	Path    string   `json:"path"`
	Name    string   `json:"name"`
	Link    string   `json:"link,omitempty"`
	Owner   string   `json:"owner,omitempty"`
	Types   []string `json:"types"`
	Courses []string `json:"courses"`
	Date    string   `json:"date,omitempty"`
}

func outputItemsJSON(cmd *cobra.Command, items []domain.ParsedItem) error {
	out := make([]itemJSON, len(items))
	for i := range items {
		it := &items[i]
		out[i] = itemJSON{
			ID:      it.ID,
			Path:    it.Path,
			Name:    it.Name,
			Link:    it.Link,
			Owner:   it.Owner,
			Types:   typeNames(it.Types),
			Courses: append([]string{}, it.Courses...),
			Date:    formatDate(it.Date),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printItem(cmd *cobra.Command, item *domain.ParsedItem) {
	cmd.Println(item.Path)
	if item.ID != "" {
		cmd.Printf("  ID:      %s\n", item.ID)
	}
	cmd.Printf("  Types:   %s\n", orNone(strings.Join(typeNames(item.Types), ", ")))
	cmd.Printf("  Courses: %s\n", orNone(strings.Join(item.Courses, ", ")))
	if item.HasType(domain.ContentExam) {
		cmd.Printf("  Date:    %s\n", orNone(formatDate(item.Date)))
	}
	if item.Link != "" {
		cmd.Printf("  Link:    %s\n", item.Link)
	}
	cmd.Println()
}

func typeNames(types []domain.ContentType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

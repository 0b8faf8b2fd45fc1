package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apuntes/internal/adapters/driven/catalog"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Manage the course catalog",
	Long: `The course catalog maps course codes to names. Names are used to guess
the course of files whose path carries no course code.`,
}

var coursesImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import courses from a YAML file",
	Long: `Imports courses from a YAML file. Existing courses with the same id are
updated.

File format:
  courses:
    - id: "61.08"
      name: Álgebra II
    - id: "75.41"
      name: Algoritmos y Programación II`,
	Args: cobra.ExactArgs(1),
	RunE: runCoursesImport,
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the course catalog",
	Args:  cobra.NoArgs,
	RunE:  runCoursesList,
}

func init() {
	coursesCmd.AddCommand(coursesImportCmd)
	coursesCmd.AddCommand(coursesListCmd)
	rootCmd.AddCommand(coursesCmd)
}

func runCoursesImport(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	courses, err := catalog.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	n, err := catalogService.Import(cmd.Context(), courses)
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	cmd.Printf("Imported %d courses.\n", n)
	return nil
}

func runCoursesList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	courses, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list courses: %w", err)
	}

	if len(courses) == 0 {
		cmd.Println("No courses found. Import some with 'apuntes courses import'.")
		return nil
	}

	for _, c := range courses {
		cmd.Printf("  %-8s %s\n", c.ID, c.Name)
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apuntes/internal/core/domain"
)

var (
	itemsType   string
	itemsCourse string
	itemsLimit  int
	itemsJSON   bool
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Browse classified files",
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List classified files",
	Long: `Lists classified files, optionally filtered by content type or course.

Content types: exam, guide, exercise, project, theory, summary, bibliography,
solution, code, suggestions, polls, miscellaneous.`,
	Args: cobra.NoArgs,
	RunE: runItemsList,
}

var itemsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one classified file",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsGet,
}

func init() {
	itemsListCmd.Flags().StringVarP(&itemsType, "type", "t", "", "only items with this content type")
	itemsListCmd.Flags().StringVarP(&itemsCourse, "course", "c", "", "only items of this course id")
	itemsListCmd.Flags().IntVarP(&itemsLimit, "limit", "n", 50, "maximum number of items, 0 = all")
	itemsListCmd.Flags().BoolVar(&itemsJSON, "json", false, "output results as JSON")
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsGetCmd)
	rootCmd.AddCommand(itemsCmd)
}

func runItemsList(cmd *cobra.Command, _ []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	items, err := itemService.List(cmd.Context(), domain.ParsedItemFilter{
		Type:     domain.ContentType(itemsType),
		CourseID: itemsCourse,
		Limit:    itemsLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	if itemsJSON {
		return outputItemsJSON(cmd, items)
	}
	if len(items) == 0 {
		cmd.Println("No items found.")
		return nil
	}
	for i := range items {
		printItem(cmd, &items[i])
	}
	return nil
}

func runItemsGet(cmd *cobra.Command, args []string) error {
	if itemService == nil {
		return errors.New("item service not configured")
	}

	item, err := itemService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}
	printItem(cmd, item)
	return nil
}

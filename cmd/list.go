package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skytab-app/market/internal/catalog"
	"github.com/skytab-app/market/internal/i18n"
)

var listCmd = &cobra.Command{
	Use:   "list [collection]",
	Short: "Show collections and their contents",
	Long: `List every collection in the catalog, or the items of one collection.

Example:
  skytab-market list
  skytab-market list nature-photography`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := catalog.NewClient().Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T("FailedToLoad", nil), err)
	}

	if len(args) == 1 {
		return listCollection(cat, args[0])
	}

	fmt.Println(i18n.T("Collections", nil))
	fmt.Println()

	for _, c := range cat.Collections {
		count := 0
		for _, it := range cat.Items {
			if it.InCollection(c.Name) {
				count++
			}
		}

		fmt.Printf("  %s · %s\n", c.Name, c.DisplayName)
		line := i18n.T("CollectionItems", map[string]any{"Count": count}, count)
		if types := c.ContentTypes(cat.Items); len(types) > 0 {
			line += " · " + strings.Join(types, ", ")
		}
		fmt.Printf("    %s\n", line)

		if c.Description != "" {
			fmt.Printf("    %s\n", c.Description)
		}
		fmt.Println()
	}

	return nil
}

func listCollection(cat *catalog.Catalog, name string) error {
	c := cat.FindCollection(name)
	if c == nil {
		return fmt.Errorf("unknown collection: %s", name)
	}

	fmt.Println(c.DisplayName)
	if c.Description != "" {
		fmt.Println(c.Description)
	}
	fmt.Println()

	for _, it := range cat.Items {
		if !it.InCollection(c.Name) {
			continue
		}
		fmt.Printf("  %s (%s)", it.DisplayName, it.Type)
		if it.Author != "" {
			fmt.Printf(" · %s", i18n.T("ByAuthor", map[string]any{"Author": it.Author}))
		}
		fmt.Println()
	}

	return nil
}

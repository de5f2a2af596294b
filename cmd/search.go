package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skytab-app/market/internal/catalog"
	"github.com/skytab-app/market/internal/i18n"
	"github.com/skytab-app/market/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search addons across the whole catalog",
	Long: `Search for addons using fuzzy matching across the entire catalog.

The search looks through addon names, authors, and types.

Example:
  skytab-market search sunset
  skytab-market search minimal`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	cat, err := catalog.NewClient().Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T("FailedToLoad", nil), err)
	}

	if len(cat.Items) == 0 {
		fmt.Println(i18n.T("NoMarketplace", nil))
		return nil
	}

	results := search.FuzzySearch(cat.Items, keyword)
	if len(results) == 0 {
		fmt.Println(i18n.T("NoResults", map[string]any{"Keyword": keyword}))
		return nil
	}

	fmt.Println(i18n.T("SearchResults", map[string]any{"Count": len(results)}, len(results)))
	fmt.Println()

	for _, r := range results {
		fmt.Printf("  %s (%s)\n", r.Item.DisplayName, r.Item.Type)

		if r.Item.Author != "" {
			fmt.Printf("    %s\n", i18n.T("ByAuthor", map[string]any{"Author": r.Item.Author}))
		}
		fmt.Printf("    %d %s · %d %s\n",
			r.Item.Views, i18n.T("Views", nil),
			r.Item.Downloads, i18n.T("Downloads", nil))
		fmt.Println()
	}

	return nil
}

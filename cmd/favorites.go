package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skytab-app/market/internal/catalog"
	"github.com/skytab-app/market/internal/events"
	"github.com/skytab-app/market/internal/favorites"
	"github.com/skytab-app/market/internal/i18n"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites [type] [name]",
	Short: "Manage favorited addons",
	Long: `Without arguments, list every favorited addon. With a type and a
name, toggle that addon's favorite state.

Example:
  skytab-market favorites
  skytab-market favorites photo_pack northern-lights`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runFavorites,
}

func runFavorites(cmd *cobra.Command, args []string) error {
	store := favorites.NewStore(events.NewBroker())
	store.Load()

	if len(args) == 2 {
		return toggleFavorite(cmd, store, args[0], args[1])
	}
	if len(args) == 1 {
		return fmt.Errorf("favorites toggle needs both a type and a name")
	}

	favs := store.Favorites()
	fmt.Println(i18n.T("FavoritesCount", map[string]any{"Count": len(favs)}, len(favs)))

	for _, k := range favs {
		fmt.Printf("  %s/%s\n", k.Category, k.ItemID)
	}
	return nil
}

func toggleFavorite(cmd *cobra.Command, store *favorites.Store, itemType, name string) error {
	display := name
	if cat, err := catalog.NewClient().Load(cmd.Context()); err == nil {
		if it := cat.FindItem(itemType, name); it != nil {
			display = it.DisplayName
		}
	}

	store.Toggle(itemType, name)

	if store.IsFavorite(itemType, name) {
		fmt.Println(i18n.T("FavoriteAdded", map[string]any{"Name": display}))
	} else {
		fmt.Println(i18n.T("FavoriteRemoved", map[string]any{"Name": display}))
	}
	return nil
}

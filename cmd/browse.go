package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/skytab-app/market/internal/catalog"
	"github.com/skytab-app/market/internal/config"
	"github.com/skytab-app/market/internal/embedhost"
	"github.com/skytab-app/market/internal/events"
	"github.com/skytab-app/market/internal/favorites"
	"github.com/skytab-app/market/internal/prefs"
	"github.com/skytab-app/market/internal/querystring"
	"github.com/skytab-app/market/internal/tui"
)

var (
	browseState     string
	browseType      string
	browseColl      string
	browseSort      string
	browsePage      int
	browsePerPage   int
	browseView      string
	browseFavsOnly  bool
	browseEmbed     bool
	browsePreview   bool
	browseEmbedAddr string
	browseRefresh   bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive marketplace explorer",
	Long: `Open the interactive marketplace explorer.

Filters, sort, and pagination can be preset with flags or with a
shareable deep-link query string:

  skytab-market browse --state "q=sunset&type=photo_pack&sort=trending"
  skytab-market browse --type quote_pack --sort most-downloaded

When launched by a hosting application, --embed connects the explorer
to the host's message channel; --preview additionally disables
install actions.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseState, "state", "", "deep-link query string (q=...&type=...)")
	browseCmd.Flags().StringVar(&browseType, "type", "", "filter by addon type")
	browseCmd.Flags().StringVar(&browseColl, "collection", "", "filter by collection")
	browseCmd.Flags().StringVar(&browseSort, "sort", "", "sort mode")
	browseCmd.Flags().IntVar(&browsePage, "page", 0, "page number")
	browseCmd.Flags().IntVar(&browsePerPage, "per-page", 0, "items per page (12, 24, or 48)")
	browseCmd.Flags().StringVar(&browseView, "view", "", "view mode (grid or list)")
	browseCmd.Flags().BoolVar(&browseFavsOnly, "favorites", false, "show favorites only")
	browseCmd.Flags().BoolVar(&browseEmbed, "embed", false, "run embedded in a hosting application")
	browseCmd.Flags().BoolVar(&browsePreview, "preview", false, "read-only preview mode")
	browseCmd.Flags().StringVar(&browseEmbedAddr, "embed-addr", "", "host message channel address (unix socket path or host:port)")
	browseCmd.Flags().BoolVar(&browseRefresh, "refresh", false, "refetch the catalog, bypassing the cache")
}

// browseValues merges the --state query string with individual flag
// overrides into one set of URL values. Flags win over --state.
func browseValues() url.Values {
	v := querystring.Parse(browseState)

	if browseType != "" {
		v.Set(querystring.ParamType, browseType)
	}
	if browseColl != "" {
		v.Set(querystring.ParamCollection, browseColl)
	}
	if browseSort != "" {
		v.Set(querystring.ParamSort, browseSort)
	}
	if browsePage > 0 {
		v.Set(querystring.ParamPage, fmt.Sprintf("%d", browsePage))
	}
	if browsePerPage > 0 {
		v.Set(querystring.ParamPerPage, fmt.Sprintf("%d", browsePerPage))
	}
	if browseView != "" {
		v.Set(querystring.ParamView, browseView)
	}
	if browseEmbed {
		v.Set(querystring.ParamEmbed, "true")
	}
	if browsePreview {
		v.Set(querystring.ParamPreview, "true")
	}

	return v
}

func runBrowse(cmd *cobra.Command, args []string) error {
	prefManager := prefs.NewManager()
	st := querystring.Decode(browseValues(), prefManager.Load())
	if browseFavsOnly {
		st.FavoritesOnly = true
	}

	broker := events.NewBroker()

	favStore := favorites.NewStore(broker)
	favStore.Load()

	var host *embedhost.Conn
	if st.Embed && browseEmbedAddr != "" {
		conn, err := embedhost.Dial(browseEmbedAddr)
		if err != nil {
			// A missing host is not fatal: the explorer stays usable,
			// messages just go nowhere.
			if verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		} else {
			host = conn
			defer host.Close()
		}
	}

	return tui.RunExplorer(tui.Options{
		State:     st,
		Locale:    config.GetLocale(),
		Catalog:   catalog.NewClient(),
		Favorites: favStore,
		Prefs:     prefManager,
		Seeds:     prefs.NewSeedStore(),
		Broker:    broker,
		Host:      host,
		Refresh:   browseRefresh,
	})
}

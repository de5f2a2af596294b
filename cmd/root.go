package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:           "skytab-market",
		Short:         "Explore the Skytab new-tab addon marketplace",
		SilenceErrors: true,
		Long: `skytab-market is the terminal client for the Skytab new-tab
extension's addon marketplace: photo packs, quote packs, and
preset settings submitted by the community.

Commands:
  browse       Open the interactive marketplace explorer
  search       Search addons across the whole catalog
  list         Show collections and their contents
  favorites    Manage favorited addons
  config       Manage configuration

Shortcuts (aliases):
  fav          = favorites
  ls           = list`,
	}
)

// createAliasCommand creates a root-level alias that shares flags with a subcommand
func createAliasCommand(subCmd *cobra.Command, use string, aliases []string) *cobra.Command {
	aliasCmd := &cobra.Command{
		Use:     use,
		Short:   subCmd.Short + " (alias)",
		Long:    subCmd.Long,
		Args:    subCmd.Args,
		Aliases: aliases,
		RunE:    subCmd.RunE,
	}
	// Copy all flags from the original command
	subCmd.Flags().VisitAll(func(f *pflag.Flag) {
		aliasCmd.Flags().AddFlag(f)
	})
	return aliasCmd
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// RegisterAliases registers root-level shortcut aliases.
// Must be called after subcommands are initialized.
func RegisterAliases() {
	rootCmd.AddCommand(createAliasCommand(favoritesCmd, "fav", nil))
	rootCmd.AddCommand(createAliasCommand(listCmd, "ls", nil))
}

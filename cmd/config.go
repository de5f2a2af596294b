package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/skytab-app/market/internal/config"
	"github.com/skytab-app/market/internal/i18n"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show or change skytab-market settings.

Subcommands:
  get           Show the current configuration
  set-locale    Set the UI locale ("auto" or e.g. "fr-FR")
  set-api       Set the marketplace API base URL
  set-cache-ttl Set the catalog cache freshness window in minutes`,
	RunE: runConfigGet,
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current configuration",
	RunE:  runConfigGet,
}

var configSetLocaleCmd = &cobra.Command{
	Use:   "set-locale <locale>",
	Short: "Set the UI locale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetLocale(args[0]); err != nil {
			return err
		}
		fmt.Println(i18n.T("ConfigSaved", nil))
		return nil
	},
}

var configSetAPICmd = &cobra.Command{
	Use:   "set-api <url>",
	Short: "Set the marketplace API base URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetAPIBaseURL(args[0]); err != nil {
			return err
		}
		fmt.Println(i18n.T("ConfigSaved", nil))
		return nil
	},
}

var configSetCacheTTLCmd = &cobra.Command{
	Use:   "set-cache-ttl <minutes>",
	Short: "Set the catalog cache freshness window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[0])
		if err != nil || minutes <= 0 {
			return fmt.Errorf("cache TTL must be a positive number of minutes")
		}
		if err := config.SetCacheTTLMinutes(minutes); err != nil {
			return err
		}
		fmt.Println(i18n.T("ConfigSaved", nil))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetLocaleCmd)
	configCmd.AddCommand(configSetAPICmd)
	configCmd.AddCommand(configSetCacheTTLCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println(i18n.T("ConfigLocale", map[string]any{"Locale": cfg.Locale}))
	fmt.Println(i18n.T("ConfigAPIBaseURL", map[string]any{"URL": cfg.API.BaseURL}))
	fmt.Println(i18n.T("ConfigCacheTTL", map[string]any{"Minutes": cfg.API.CacheTTLMinutes}))
	return nil
}

package main

import (
	"log"
	"os"

	"github.com/kjeldgaard/qbitctl/cmd"
	"github.com/kjeldgaard/qbitctl/internal/config"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFlags(0)

	var rootCmd = &cobra.Command{
		Use:   "qbitctl",
		Short: "Add and list qBittorrent torrents from the command line",
		Long: `Add torrents to qBittorrent from files or magnet links, and list
active torrents, over the Web API v2.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&config.CfgFile, "config", "c", "", "config file (default is $HOME/.config/qbitctl/qbitctl.toml)")
	rootCmd.PersistentFlags().StringVar(&config.Overrides.Host, "host", "", "qBittorrent host (overrides config)")
	rootCmd.PersistentFlags().StringVar(&config.Overrides.Username, "username", "", "qBittorrent username (overrides config)")
	rootCmd.PersistentFlags().StringVar(&config.Overrides.Password, "password", "", "qBittorrent password (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&config.Overrides.DryRun, "dry-run", false, "Do not send requests; print what would be sent")
	rootCmd.PersistentFlags().BoolVarP(&config.Overrides.Verbose, "verbose", "v", false, "Print verbose HTTP requests/responses")

	rootCmd.AddCommand(cmd.RunAdd())
	rootCmd.AddCommand(cmd.RunList())
	rootCmd.AddCommand(cmd.RunVersion(version, commit, date))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

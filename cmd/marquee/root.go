package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath      string
	refreshOverride int
	cacheOverride   string
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Cycling console display of movie showtimes",
	Long: `marquee - cycling console display of movie showtimes

Fetches today's showtimes for each configured theater once per UTC day
and cycles the console through them, one theater at a time. Data comes
from the SerpAPI showtimes search endpoint and is cached in a flat JSON
file so restarts within the same day make no API calls.`,
	SilenceUsage: true,
	RunE:         run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to TOML config file (required)")
	rootCmd.Flags().IntVar(&refreshOverride, "refresh", 0, "Seconds to display each theater (overrides config)")
	rootCmd.Flags().StringVar(&cacheOverride, "cache-file", "", "Path to cache JSON (overrides config)")
	_ = rootCmd.MarkFlagRequired("config")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")
}

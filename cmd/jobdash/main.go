// Package main provides the entry point for the AI job market dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "jobdash",
	Short: "AI job market dashboard",
	Long: "jobdash loads a CSV of AI job postings once and serves summary statistics " +
		"and charts about industries, skills and experience levels.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (default config.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging and template reload on every request")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

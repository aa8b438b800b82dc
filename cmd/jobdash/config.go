package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-job-dashboard/internal/config"
)

// loadConfig resolves the configuration for cmd: file and environment
// first, then any flags the user actually set. dataPath is the value bound
// to cmd's own --data flag.
func loadConfig(cmd *cobra.Command, dataPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("data") {
		cfg.Data.Path = dataPath
	}
	if flags.Changed("host") {
		cfg.Server.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Server.Port = servePort
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ai-job-dashboard/internal/dataset"
	"github.com/jonathan/ai-job-dashboard/internal/logging"
	"github.com/jonathan/ai-job-dashboard/internal/observability"
	"github.com/jonathan/ai-job-dashboard/internal/server"
)

var (
	serveDataPath string
	serveHost     string
	servePort     int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	Long: `Load the job postings CSV and serve the dashboard pages (/, /industry,
/skills, /experience). A missing or malformed CSV stops startup.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveDataPath, "data", "", "Path to the job postings CSV")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Interface to listen on")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, serveDataPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := observability.InitTracer(ctx, cfg.Tracing.ServiceName, version, cfg.Tracing.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	data, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info("dataset loaded",
		zap.String("source", data.Source()),
		zap.Int("rows", data.Len()),
		zap.Strings("columns", data.Columns()),
	)

	srv, err := server.New(cfg, data, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start(ctx)
}

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/amqp"
	"fintrack/internal/backend"
	"fintrack/internal/config"
	"fintrack/internal/export"
	exportgoogle "fintrack/internal/export/google"
	"fintrack/internal/log"
	"fintrack/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.Config{
		Level:     log.DefaultConfig().Level,
		Component: log.ComponentWorker,
	})
	log.SetDefault(logger)

	logger.Info("Starting fintrack-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the export worker")
		os.Exit(1)
	}
	if cfg.GoogleSpreadsheetID == "" {
		logger.Error("GOOGLE_SPREADSHEET_ID is required for the export worker")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The worker re-reads transactions from the same gateway the server
	// uses, so exported rows reflect the state at processing time.
	factory := backend.NewFactory(logger.Logger)
	result, err := factory.Create(ctx, backend.Config{
		Type:           backend.Type(cfg.DataBackend),
		RemoteBaseURL:  cfg.RemoteBaseURL,
		RemoteEmail:    cfg.RemoteEmail,
		RemotePassword: cfg.RemotePassword,
		SQLiteDBPath:   cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize backend",
			log.FieldError, err,
			log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", log.FieldError, err)
			}
		}()
	}

	writer, err := exportgoogle.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets writer", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Google Sheets writer initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	exportWorker := worker.NewExportWorker(result.Gateway, export.NewSerializer(writer))

	go func() {
		if err := exportWorker.Run(ctx, amqpClient); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error("Export consumption failed", log.FieldError, err)
			}
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down worker...")
	cancel()

	// Give in-flight exports a moment to finish.
	time.Sleep(2 * time.Second)
	logger.Info("Worker shutdown complete")
}

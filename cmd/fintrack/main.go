package main

import (
	"context"
	"net/http"
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
	apphttp "fintrack/internal/http"
	"fintrack/internal/log"
	"fintrack/internal/session"
	"fintrack/internal/store"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Build the persistence gateway for the configured backend.
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

	// Populate the local store from the gateway before serving.
	st := store.New()
	sessions := session.NewManager(result.Gateway, st)
	bootstrapCtx, bootstrapCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := sessions.Bootstrap(bootstrapCtx); err != nil {
		logger.Warn("Session bootstrap failed, starting with an empty store",
			log.FieldError, err,
			log.FieldBackend, cfg.DataBackend)
	}
	bootstrapCancel()

	// Export path: broker when configured, otherwise a synchronous
	// serializer against Google Sheets when that is configured.
	var publisher apphttp.ExportPublisher
	var serializer *export.Serializer
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", log.FieldError, err)
			os.Exit(1)
		}
		defer amqpClient.Close()
		publisher = amqpClient
		logger.Info("Export requests will be published to the broker")
	} else if cfg.GoogleSpreadsheetID != "" {
		writer, err := exportgoogle.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets writer", log.FieldError, err)
			os.Exit(1)
		}
		serializer = export.NewSerializer(writer)
		logger.Info("Exports will be written synchronously to Google Sheets")
	} else {
		logger.Info("Export disabled - no broker or spreadsheet configured")
	}

	srv := apphttp.NewServer(apphttp.ServerConfig{
		Addr:         ":" + cfg.Port,
		Gateway:      result.Gateway,
		Store:        st,
		Sessions:     sessions,
		Logger:       logger,
		Publisher:    publisher,
		Serializer:   serializer,
		CacheTTL:     cfg.CacheTTL,
		CacheMaxSize: cfg.CacheMaxSize,
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		sessions.Teardown(shutdownCtx)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting fintrack server",
		"port", cfg.Port,
		log.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

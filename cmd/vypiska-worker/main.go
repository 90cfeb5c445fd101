package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"vypiska/internal/amqp"
	"vypiska/internal/backend"
	"vypiska/internal/config"
	"vypiska/internal/quotes"
	"vypiska/internal/report"
	"vypiska/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting vypiska-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the transaction source
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Failed to configure backend", "error", err)
		os.Exit(1)
	}
	source, err := backend.NewFactory(logger).CreateSource(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if source.Cleanup != nil {
		defer source.Cleanup()
	}

	// Initialize the quote service (optional; financial reports fail without it)
	var fetcher report.QuoteFetcher
	if cfg.AlphaVantageAPIKey != "" {
		quoteSvc, err := quotes.NewServiceFromKey(cfg.AlphaVantageAPIKey, cfg.QuoteTimeout, logger)
		if err != nil {
			logger.Error("Failed to initialize quote service", "error", err)
			os.Exit(1)
		}
		fetcher = quoteSvc
		logger.Info("Quote service initialized")
	} else {
		logger.Info("Quote service disabled - no API_ALPHAVANTAGE provided")
	}

	reportSvc := report.NewService(source.Source, fetcher, logger)
	reportWorker := worker.NewReportWorker(reportSvc, report.NewWriter(cfg.ReportDir), logger)

	// Initialize AMQP client for consuming report requests
	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	go func() {
		if err := amqpClient.ConsumeReportRequests(ctx, reportWorker.HandleRequest); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.Error("Message consumption failed", "error", err)
			}
			cancel()
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("vypiska-worker started", "queue", cfg.AMQPQueue, "report_dir", cfg.ReportDir)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	case <-ctx.Done():
	}

	logger.Info("vypiska-worker stopped gracefully")
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"vypiska/internal/amqp"
	"vypiska/internal/backend"
	"vypiska/internal/config"
	"vypiska/internal/quotes"
	"vypiska/internal/report"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		kind     = flag.String("report", amqp.KindFinancial, "report kind: financial, cashback or spending")
		date     = flag.String("date", "", `target date: "2006-01-02 15:04:05" for financial, "2006-01-02" for spending (spending defaults to today)`)
		year     = flag.Int("year", 0, "cashback year")
		month    = flag.Int("month", 0, "cashback month (1-12)")
		category = flag.String("category", "", "spending category")
		out      = flag.String("out", "", "persist the report to this filename under REPORT_DIR")
		save     = flag.Bool("save", false, "persist the report with an auto-generated timestamped name")
		enqueue  = flag.Bool("enqueue", false, "publish the request to the report queue instead of generating locally")
	)
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	req := amqp.NewReportRequest(*kind)
	req.Year = *year
	req.Month = *month
	req.Category = *category
	req.Filename = *out
	switch *kind {
	case amqp.KindFinancial:
		req.TargetDate = *date
	case amqp.KindSpending:
		req.Date = *date
	}
	if err := req.Validate(); err != nil {
		logger.Error("Invalid report request", "error", err)
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	if *enqueue {
		if err := publish(ctx, cfg, req); err != nil {
			logger.Error("Failed to enqueue report request", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, cfg, logger, req, *save); err != nil {
		logger.Error("Report generation failed", "kind", *kind, "error", err)
		os.Exit(1)
	}
}

func publish(ctx context.Context, cfg *config.Config, req *amqp.ReportRequest) error {
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.PublishReportRequest(ctx, req)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, req *amqp.ReportRequest, save bool) error {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return err
	}
	source, err := backend.NewFactory(logger).CreateSource(ctx, backendCfg)
	if err != nil {
		return err
	}
	if source.Cleanup != nil {
		defer source.Cleanup()
	}

	// Quotes are only needed for the financial report; the other reports run
	// without an API key.
	var fetcher report.QuoteFetcher
	if req.Kind == amqp.KindFinancial {
		svc, err := quotes.NewServiceFromKey(cfg.AlphaVantageAPIKey, cfg.QuoteTimeout, logger)
		if err != nil {
			return err
		}
		fetcher = svc
	}

	svc := report.NewService(source.Source, fetcher, logger)

	var res report.Result
	switch req.Kind {
	case amqp.KindFinancial:
		out, err := svc.Financial(ctx, req.TargetDate)
		if err != nil {
			return err
		}
		res = report.StructuredResult{Value: out}
	case amqp.KindCashback:
		out, err := svc.Cashback(ctx, req.Year, req.Month)
		if err != nil {
			return err
		}
		// Already formatted JSON; print as-is below.
		res = report.StructuredResult{Value: json.RawMessage(out)}
	case amqp.KindSpending:
		out, err := svc.Spending(ctx, req.Category, req.Date)
		if err != nil {
			return err
		}
		res = report.TabularResult(out)
	}

	if req.Filename != "" || save {
		writer := report.NewWriter(cfg.ReportDir)
		path, err := writer.Write(res, req.Filename)
		if err != nil {
			return err
		}
		logger.Info("Report written", "path", path)
	}

	return printResult(res)
}

func printResult(res report.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(report.Export(res)); err != nil {
		return fmt.Errorf("print report: %w", err)
	}
	return nil
}

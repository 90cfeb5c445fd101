// Package worker turns queued report requests into persisted report files.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"vypiska/internal/amqp"
	"vypiska/internal/report"
)

// ReportWorker handles report requests consumed from the queue: it runs the
// requested report and hands the result to the persistence writer.
type ReportWorker struct {
	svc    *report.Service
	writer *report.Writer
	logger *slog.Logger
}

func NewReportWorker(svc *report.Service, writer *report.Writer, logger *slog.Logger) *ReportWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWorker{svc: svc, writer: writer, logger: logger}
}

// HandleRequest generates and persists one report. Errors bubble up so the
// consumer can requeue the request.
func (w *ReportWorker) HandleRequest(ctx context.Context, req *amqp.ReportRequest) error {
	res, err := w.buildResult(ctx, req)
	if err != nil {
		return err
	}

	path, err := w.writer.Write(res, req.Filename)
	if err != nil {
		return fmt.Errorf("persist %s report: %w", req.Kind, err)
	}
	w.logger.Info("Report written", "kind", req.Kind, "path", path)
	return nil
}

func (w *ReportWorker) buildResult(ctx context.Context, req *amqp.ReportRequest) (report.Result, error) {
	switch req.Kind {
	case amqp.KindFinancial:
		out, err := w.svc.Financial(ctx, req.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("financial report: %w", err)
		}
		return report.StructuredResult{Value: out}, nil
	case amqp.KindCashback:
		out, err := w.svc.Cashback(ctx, req.Year, req.Month)
		if err != nil {
			return nil, fmt.Errorf("cashback report: %w", err)
		}
		// Already formatted JSON; persist it verbatim.
		return report.StructuredResult{Value: json.RawMessage(out)}, nil
	case amqp.KindSpending:
		out, err := w.svc.Spending(ctx, req.Category, req.Date)
		if err != nil {
			return nil, fmt.Errorf("spending report: %w", err)
		}
		return report.TabularResult(out), nil
	default:
		return nil, fmt.Errorf("unknown report kind %q", req.Kind)
	}
}

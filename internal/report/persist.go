// Package report assembles the JSON reports and persists them to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vypiska/internal/core"
)

// Result is a report outcome that knows its JSON-serializable projection.
// The closed set of variants replaces value-type sniffing at the
// serialization boundary: tabular results become a list of row mappings,
// structured results serialize as-is, anything else is coerced to its
// string representation via ScalarResult.
type Result interface {
	jsonValue() any
}

// TabularResult is a transaction table; it serializes as a list of per-row
// mappings. Absent payment dates and numerics serialize as null.
type TabularResult []core.Transaction

func (r TabularResult) jsonValue() any {
	rows := make([]map[string]any, 0, len(r))
	for _, t := range r {
		var paymentDate any
		if t.HasPaymentDate() {
			paymentDate = t.PaymentDate.Format(core.PaymentDateLayout)
		}
		rows = append(rows, map[string]any{
			"operation_date": t.OperationDate,
			"payment_date":   paymentDate,
			"card_number":    t.CardNumber,
			"amount":         numberValue(t.Amount),
			"category":       t.Category,
			"description":    t.Description,
			"cashback":       numberValue(t.Cashback),
		})
	}
	return rows
}

// StructuredResult wraps an already JSON-shaped value (map, slice, struct,
// string, number, bool or nil) and serializes it unchanged.
type StructuredResult struct {
	Value any
}

func (r StructuredResult) jsonValue() any { return r.Value }

// ScalarResult coerces any other value to its string representation.
type ScalarResult struct {
	Value any
}

func (r ScalarResult) jsonValue() any { return fmt.Sprint(r.Value) }

// Export returns the JSON-serializable projection of a result, for callers
// that encode it themselves instead of going through a Writer.
func Export(res Result) any { return res.jsonValue() }

func numberValue(n core.Number) any {
	if !n.Valid {
		return nil
	}
	return n.Value
}

// Writer persists report results as UTF-8 JSON files: 4-space indentation,
// non-ASCII characters preserved. An existing target file is overwritten
// without warning.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter creates a writer placing files under dir ("." when empty).
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, now: time.Now}
}

// Write serializes the result to filename under the writer's directory.
// When filename is empty the name is generated from the current timestamp as
// report_YYYYMMDD_HHMMSS.json; two writes within the same second overwrite
// each other. Returns the path written.
func (w *Writer) Write(res Result, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("report_%s.json", w.now().Format("20060102_150405"))
	}
	path := filepath.Join(w.dir, filename)

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(res.jsonValue()); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}

// Wrap decorates a report-producing function: the returned function runs fn,
// persists its result, and hands the original result back unchanged. The
// write happens only on success.
func (w *Writer) Wrap(filename string, fn func() (Result, error)) func() (Result, error) {
	return func() (Result, error) {
		res, err := fn()
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(res, filename); err != nil {
			return nil, err
		}
		return res, nil
	}
}

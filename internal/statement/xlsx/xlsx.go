// Package xlsx loads bank statement exports from Excel workbooks.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"vypiska/internal/core"
	"vypiska/internal/statement"
)

// Source reads transactions from an .xlsx statement export. The first row of
// the sheet is the header row; remaining rows are data. A missing file is a
// fatal error surfaced to the caller, while malformed individual cells are
// tolerated per the shared row mapping.
type Source struct {
	path  string
	sheet string
}

var _ statement.TransactionSource = (*Source)(nil)

// New creates a source for the given workbook. sheet may be empty, in which
// case the workbook's first sheet is used.
func New(path, sheet string) *Source {
	return &Source{path: path, sheet: sheet}
}

func (s *Source) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open statement %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := statement.MapHeaders(rows[0])
	txs := make([]core.Transaction, 0, len(rows)-1)
	for _, row := range rows[1:] {
		txs = append(txs, cols.RowToTransaction(row))
	}
	return txs, nil
}

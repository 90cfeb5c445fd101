package memory

import (
	"context"
	"sync"

	"vypiska/internal/core"
	"vypiska/internal/statement"
)

// Store is an in-memory transaction source, used in tests and as a seed
// backend when no statement file is configured.
type Store struct {
	mu  sync.Mutex
	txs []core.Transaction
}

var _ statement.TransactionSource = (*Store)(nil)

func New(txs []core.Transaction) *Store {
	return &Store{txs: append([]core.Transaction(nil), txs...)}
}

// NewFromRows builds a store from a raw header row plus data rows, going
// through the same row mapping as the file-based sources.
func NewFromRows(headers []string, rows [][]string) *Store {
	cols := statement.MapHeaders(headers)
	txs := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, cols.RowToTransaction(row))
	}
	return New(txs)
}

// ListTransactions returns a copy; callers never share the backing slice.
func (s *Store) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...), nil
}

// Append adds transactions to the store.
func (s *Store) Append(txs ...core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, txs...)
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"vypiska/internal/core"
	"vypiska/internal/statement"

	_ "modernc.org/sqlite"
)

// storedDateLayout is how payment dates are kept in SQLite. NULL means the
// source cell was missing or unparseable.
const storedDateLayout = "2006-01-02"

// SQLiteRepository caches an imported statement locally so reports can run
// without re-reading the original spreadsheet. It implements
// statement.TransactionSource.
type SQLiteRepository struct {
	db *sql.DB
}

var _ statement.TransactionSource = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath, migrationsFS); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Import replaces the cached statement with the given transactions.
func (r *SQLiteRepository) Import(ctx context.Context, txs []core.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (operation_date, payment_date, card_number, amount, category, description, cashback)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txs {
		var paymentDate sql.NullString
		if t.HasPaymentDate() {
			paymentDate = sql.NullString{String: t.PaymentDate.Format(storedDateLayout), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			t.OperationDate, paymentDate, t.CardNumber,
			toNullFloat(t.Amount), t.Category, t.Description, toNullFloat(t.Cashback),
		); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	slog.InfoContext(ctx, "Statement imported to SQLite", "transactions", len(txs))
	return nil
}

// ListTransactions implements statement.TransactionSource; rows come back in
// their original import order.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT operation_date, payment_date, card_number, amount, category, description, cashback
		FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t           core.Transaction
			paymentDate sql.NullString
			amount      sql.NullFloat64
			cashback    sql.NullFloat64
		)
		if err := rows.Scan(&t.OperationDate, &paymentDate, &t.CardNumber, &amount, &t.Category, &t.Description, &cashback); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if paymentDate.Valid {
			if at, err := time.Parse(storedDateLayout, paymentDate.String); err == nil {
				t.PaymentDate = at
			}
		}
		t.Amount = fromNullFloat(amount)
		t.Cashback = fromNullFloat(cashback)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

func toNullFloat(n core.Number) sql.NullFloat64 {
	return sql.NullFloat64{Float64: n.Value, Valid: n.Valid}
}

func fromNullFloat(n sql.NullFloat64) core.Number {
	if !n.Valid {
		return core.Number{}
	}
	return core.Num(n.Float64)
}

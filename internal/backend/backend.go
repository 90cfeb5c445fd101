// Package backend selects and constructs the transaction source named by the
// configuration.
package backend

import (
	"context"

	"vypiska/internal/statement"
)

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result contains the constructed source and an optional cleanup function.
type Result struct {
	Source  statement.TransactionSource
	Cleanup CleanupFunc
}

// Factory creates transaction sources based on configuration.
type Factory interface {
	CreateSource(ctx context.Context, cfg Config) (*Result, error)
}

// Config holds what source construction needs.
type Config struct {
	Type Type

	// xlsx specific
	XLSXPath  string
	XLSXSheet string

	// sqlite specific
	SQLiteDBPath string
}

// Type represents the kind of transaction source.
type Type string

const (
	XLSXBackend   Type = "xlsx"
	SheetsBackend Type = "sheets"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case XLSXBackend, SheetsBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

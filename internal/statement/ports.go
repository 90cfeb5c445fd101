package statement

import (
	"context"

	"vypiska/internal/core"
)

// Ports for statement sources.
type (
	// TransactionSource supplies the ordered transaction table a report is
	// built from. Implementations must tolerate missing or malformed cells
	// (absent values arrive as zero values / invalid Numbers), never failing
	// on individual rows. Failing to reach the source at all is fatal and
	// returned as an error.
	TransactionSource interface {
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}
)

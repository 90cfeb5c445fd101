package services

import (
	"math"
	"sort"
	"strings"

	"vypiska/internal/core"
)

const (
	// topLimit is how many transactions the ranking keeps.
	topLimit = 5
	// unknownDate marks operation dates that failed to parse.
	unknownDate = "Unknown"
	// placeholder stands in for an absent category or description.
	placeholder = "—"
)

// TopTransactions ranks transactions by absolute amount, descending, and
// returns at most five. The sort is stable, so equal absolute amounts keep
// their input order. Amounts keep their original sign. Rows with a
// non-numeric amount are skipped and counted.
//
// The operation date is reformatted to day precision ("31.07.2020"); if it
// does not parse, the "Unknown" sentinel is used instead of dropping the row.
func TopTransactions(ops []core.Transaction) ([]core.TopTransaction, int) {
	out := make([]core.TopTransaction, 0, len(ops))
	skipped := 0

	for _, op := range ops {
		if !op.Amount.Valid {
			skipped++
			continue
		}
		date := unknownDate
		if at, err := core.ParseOperationDate(op.OperationDate); err == nil {
			date = at.Format(core.PaymentDateLayout)
		}
		out = append(out, core.TopTransaction{
			Date:        date,
			Amount:      op.Amount.Value,
			Category:    orPlaceholder(op.Category),
			Description: orPlaceholder(op.Description),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Amount) > math.Abs(out[j].Amount)
	})
	if len(out) > topLimit {
		out = out[:topLimit]
	}
	return out, skipped
}

func orPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return placeholder
	}
	return s
}

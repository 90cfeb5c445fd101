package services

import (
	"fmt"
	"sort"
	"time"

	"vypiska/internal/core"
)

// SpendingByCategory selects transactions in the given category over the
// trailing three calendar months ending at date (format "2006-01-02").
// An empty date means "ending now". The window is start-exclusive and
// end-inclusive, which differs from FilterByPaymentDate's fully inclusive
// month window; the two call sites intentionally disagree.
//
// Category matching is exact and case-sensitive. Transactions whose
// operation date does not parse are skipped and counted. The result is
// sorted ascending by operation date.
func SpendingByCategory(ops []core.Transaction, category, date string) ([]core.Transaction, int, error) {
	end := time.Now()
	if date != "" {
		var err error
		end, err = time.Parse(core.ReferenceDateLayout, date)
		if err != nil {
			return nil, 0, fmt.Errorf("parse reference date %q: %w", date, err)
		}
	}
	return spendingWindow(ops, category, end)
}

func spendingWindow(ops []core.Transaction, category string, end time.Time) ([]core.Transaction, int, error) {
	start := core.MinusMonths(end, 3)

	type dated struct {
		tx core.Transaction
		at time.Time
	}
	kept := make([]dated, 0, len(ops))
	skipped := 0
	for _, op := range ops {
		if op.Category != category {
			continue
		}
		at, err := core.ParseOperationDate(op.OperationDate)
		if err != nil {
			skipped++
			continue
		}
		if !at.After(start) || at.After(end) {
			continue
		}
		kept = append(kept, dated{tx: op, at: at})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].at.Before(kept[j].at)
	})

	out := make([]core.Transaction, 0, len(kept))
	for _, d := range kept {
		out = append(out, d.tx)
	}
	return out, skipped, nil
}

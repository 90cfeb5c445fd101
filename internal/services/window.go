// Package services holds the aggregation core: date-window filtering,
// per-card and per-category rollups, and top-N selection over statement
// transactions. All functions are pure with respect to their input slice and
// follow a best-effort policy: individually malformed records are skipped,
// never fatal. Functions return the count of skipped records alongside the
// result so callers can surface the drops.
package services

import (
	"fmt"
	"sort"
	"time"

	"vypiska/internal/core"
)

// FilterByPaymentDate selects transactions whose payment date falls between
// the first day of the target month (00:00:00) and the end of the target day
// (23:59:59.999999), both inclusive. Transactions without a parsed payment
// date are dropped before filtering. The result is sorted ascending by
// payment date; the sort is stable.
//
// A malformed targetDate is the caller's mistake and propagates as an error.
func FilterByPaymentDate(ops []core.Transaction, targetDate string) ([]core.Transaction, error) {
	target, err := time.Parse(core.TargetDateLayout, targetDate)
	if err != nil {
		return nil, fmt.Errorf("parse target date %q: %w", targetDate, err)
	}

	firstDay := time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, target.Location())
	windowEnd := time.Date(target.Year(), target.Month(), target.Day(), 23, 59, 59, 999999000, target.Location())

	out := make([]core.Transaction, 0, len(ops))
	for _, op := range ops {
		if !op.HasPaymentDate() {
			continue
		}
		if op.PaymentDate.Before(firstDay) || op.PaymentDate.After(windowEnd) {
			continue
		}
		out = append(out, op)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PaymentDate.Before(out[j].PaymentDate)
	})
	return out, nil
}

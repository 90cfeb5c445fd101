package core

import (
	"fmt"
	"time"
)

// Date layouts used across the statement and report formats.
const (
	// OperationDateLayout is how statements render the operation timestamp,
	// e.g. "31.07.2020 08:25:19".
	OperationDateLayout = "02.01.2006 15:04:05"
	// PaymentDateLayout is the day-precision payment date, e.g. "05.04.2025".
	PaymentDateLayout = "02.01.2006"
	// TargetDateLayout is the report target date passed by callers,
	// e.g. "2020-08-25 15:30:00".
	TargetDateLayout = "2006-01-02 15:04:05"
	// ReferenceDateLayout is the short reference date for trailing windows,
	// e.g. "2020-04-01".
	ReferenceDateLayout = "2006-01-02"
)

// ParseOperationDate parses a raw operation timestamp from a statement row.
func ParseOperationDate(s string) (time.Time, error) {
	t, err := time.Parse(OperationDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse operation date %q: %w", s, err)
	}
	return t, nil
}

// MinusMonths subtracts n calendar months, clamping the day to the last day
// of the resulting month. time.Time.AddDate normalizes overflow instead
// (May 31 minus 3 months would land in early March), which is not how
// calendar month arithmetic is expected to behave here: May 31 minus
// 3 months is Feb 28 (or 29).
func MinusMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	shifted := first.AddDate(0, -n, 0)
	last := daysIn(shifted.Year(), shifted.Month())
	if day > last {
		day = last
	}
	return time.Date(shifted.Year(), shifted.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"vypiska/internal/core"
)

// unknownCategory groups rows whose category cell was empty.
const unknownCategory = "Unknown"

// CashbackByCategory sums the cashback field per category for transactions
// whose operation date falls in the given year and month. Rows are skipped
// (and counted) when the operation date does not parse or the cashback value
// is non-numeric or negative. Sums are rounded to 2 decimals after
// accumulation.
//
// The documented contract of this report is a JSON string, not a structured
// value: the result is returned serialized with 4-space indentation and
// non-ASCII characters preserved. Keys are emitted in sorted order, so two
// runs over the same input produce byte-identical output.
func CashbackByCategory(ops []core.Transaction, year, month int) (string, int, error) {
	sums := map[string]float64{}
	skipped := 0

	for _, op := range ops {
		at, err := core.ParseOperationDate(op.OperationDate)
		if err != nil {
			skipped++
			continue
		}
		if at.Year() != year || int(at.Month()) != month {
			continue
		}
		if !op.Cashback.Valid || op.Cashback.Value < 0 {
			skipped++
			continue
		}
		category := op.Category
		if category == "" {
			category = unknownCategory
		}
		sums[category] += op.Cashback.Value
	}

	rounded := make(map[string]float64, len(sums))
	for category, sum := range sums {
		rounded[category] = core.Round2(sum)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rounded); err != nil {
		return "", skipped, fmt.Errorf("encode cashback report: %w", err)
	}
	// Encoder appends a trailing newline; the report string should not carry it.
	return string(bytes.TrimRight(buf.Bytes(), "\n")), skipped, nil
}

package services

import (
	"strings"

	"vypiska/internal/core"
)

// AnalyzeCards groups expenses by the last four characters of the card
// number and derives a flat 1% cashback from each card's total. Only
// negative amounts count (expenses, summed by absolute value); income rows
// contribute nothing. Rows without a card number or with a non-numeric
// amount are skipped and counted. Card numbers shorter than four characters
// group by the whole string.
//
// Output order is first-encountered order of the distinct suffixes. Totals
// are rounded to 2 decimals after summation.
func AnalyzeCards(ops []core.Transaction) ([]core.CardSummary, int) {
	totals := map[string]float64{}
	var order []string
	skipped := 0

	for _, op := range ops {
		card := strings.TrimSpace(op.CardNumber)
		if card == "" || !op.Amount.Valid {
			skipped++
			continue
		}
		if op.Amount.Value >= 0 {
			continue
		}
		suffix := card
		if len(card) >= 4 {
			suffix = card[len(card)-4:]
		}
		if _, ok := totals[suffix]; !ok {
			order = append(order, suffix)
		}
		totals[suffix] += -op.Amount.Value
	}

	out := make([]core.CardSummary, 0, len(order))
	for _, suffix := range order {
		total := totals[suffix]
		out = append(out, core.CardSummary{
			LastDigits: suffix,
			TotalSpent: core.Round2(total),
			Cashback:   core.Round2(total * 0.01),
		})
	}
	return out, skipped
}

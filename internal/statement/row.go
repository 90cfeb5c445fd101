package statement

import (
	"strconv"
	"strings"
	"time"

	"vypiska/internal/core"
)

// Statement exports come with either the bank's original Russian headers or
// their English equivalents; both map to the same columns.
var headerAliases = map[string]string{
	"Дата операции":             "operation_date",
	"Operation Date":            "operation_date",
	"Дата платежа":              "payment_date",
	"Payment Date":              "payment_date",
	"Номер карты":               "card_number",
	"Card Number":               "card_number",
	"Сумма операции":            "amount",
	"Amount":                    "amount",
	"Категория":                 "category",
	"Category":                  "category",
	"Описание":                  "description",
	"Description":               "description",
	"Бонусы (включая кэшбэк)":   "cashback",
	"Cashback":                  "cashback",
}

// Columns maps logical column names to their index in a header row.
// An absent column has index -1.
type Columns struct {
	OperationDate int
	PaymentDate   int
	CardNumber    int
	Amount        int
	Category      int
	Description   int
	Cashback      int
}

// MapHeaders resolves a header row into column indexes. Unknown headers are
// ignored; missing columns stay at -1 and yield zero-valued fields.
func MapHeaders(headers []string) Columns {
	cols := Columns{OperationDate: -1, PaymentDate: -1, CardNumber: -1, Amount: -1, Category: -1, Description: -1, Cashback: -1}
	for i, h := range headers {
		switch headerAliases[strings.TrimSpace(h)] {
		case "operation_date":
			cols.OperationDate = i
		case "payment_date":
			cols.PaymentDate = i
		case "card_number":
			cols.CardNumber = i
		case "amount":
			cols.Amount = i
		case "category":
			cols.Category = i
		case "description":
			cols.Description = i
		case "cashback":
			cols.Cashback = i
		}
	}
	return cols
}

// RowToTransaction converts one data row into a Transaction. Malformed cells
// become absent values: a payment date that does not parse stays zero, a
// non-numeric amount or cashback becomes an invalid Number. Rows are never
// rejected here; the aggregators decide what to skip.
func (c Columns) RowToTransaction(row []string) core.Transaction {
	tx := core.Transaction{
		OperationDate: cell(row, c.OperationDate),
		CardNumber:    cell(row, c.CardNumber),
		Category:      cell(row, c.Category),
		Description:   cell(row, c.Description),
		Amount:        parseNumber(cell(row, c.Amount)),
		Cashback:      parseNumber(cell(row, c.Cashback)),
	}
	if raw := cell(row, c.PaymentDate); raw != "" {
		if at, err := time.Parse(core.PaymentDateLayout, raw); err == nil {
			tx.PaymentDate = at
		}
	}
	return tx
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseNumber(s string) core.Number {
	if s == "" {
		return core.Number{}
	}
	// Exports sometimes use a decimal comma.
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return core.Number{}
	}
	return core.Num(v)
}

package core

import (
	"time"
)

type (
	// Number is a numeric cell from a bank statement. Statements routinely
	// contain blank or junk values where a number is expected; those arrive
	// as an invalid Number and are skipped by the aggregators rather than
	// treated as zero.
	Number struct {
		Value float64
		Valid bool
	}

	// Transaction is one statement row. Fields are kept close to the source
	// representation: the operation date stays a raw string (it is parsed at
	// the point of use, and parse failures are handled per aggregator), while
	// the payment date is parsed by the loader and left zero when the cell
	// was missing or unparseable.
	Transaction struct {
		OperationDate string
		PaymentDate   time.Time
		CardNumber    string
		Amount        Number
		Category      string
		Description   string
		Cashback      Number
	}
)

// Num returns a valid Number holding v.
func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

// HasPaymentDate reports whether the loader managed to parse a payment date.
func (t Transaction) HasPaymentDate() bool {
	return !t.PaymentDate.IsZero()
}

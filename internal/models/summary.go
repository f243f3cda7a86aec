package models

import "github.com/shopspring/decimal"

// SummaryEntry is one employee's aggregated total within a payment type.
type SummaryEntry struct {
	FullName string
	Total    decimal.Decimal
}

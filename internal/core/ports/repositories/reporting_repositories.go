package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReportingRepository defines read operations for derived reporting data
type ReportingRepository interface {
	// GetProjectProfitData returns the project's total revenue (credit_base
	// over Income accounts) and total expenses (debit_base over Expense
	// accounts), both in the base currency.
	GetProjectProfitData(ctx context.Context, projectID string) (revenue decimal.Decimal, expenses decimal.Decimal, err error)
}

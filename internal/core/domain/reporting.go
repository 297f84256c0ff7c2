package domain

import "github.com/shopspring/decimal"

// ProjectProfit is the on-demand profitability aggregate for one project,
// derived entirely from ledger rows in the base currency.
type ProjectProfit struct {
	ProjectID string          `json:"projectID"`
	Revenue   decimal.Decimal `json:"revenue"`   // Σ credit_base over Income accounts
	Expenses  decimal.Decimal `json:"expenses"`  // Σ debit_base over Expense accounts
	NetProfit decimal.Decimal `json:"netProfit"` // Revenue − Expenses
}

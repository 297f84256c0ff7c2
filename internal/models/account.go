package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountPurpose marks the well-known posting role of an account, if any.
type AccountPurpose string

// Account represents one row in the chart of accounts.
// Note: ParentCode and CurrencyCode use pointers for nullable columns.
type Account struct {
	AccountCode  string         `db:"account_code"`
	Name         string         `db:"name"`
	AccountType  AccountType    `db:"account_type"`
	ParentCode   *string        `db:"parent_code"` // Nullable self-reference
	CurrencyCode *string        `db:"currency_code"`
	Purpose      AccountPurpose `db:"purpose"`
	IsActive     bool           `db:"is_active"`
	AuditFields
}

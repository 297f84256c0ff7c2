package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountPurpose marks an account as the posting target for a well-known
// role in the chart of accounts. Receivable and payable purposes are
// resolved per currency (one control account per currency, e.g. AR_USD);
// the freight purposes are currency-agnostic.
type AccountPurpose string

const (
	PurposeNone           AccountPurpose = ""
	PurposeReceivable     AccountPurpose = "RECEIVABLE"
	PurposePayable        AccountPurpose = "PAYABLE"
	PurposeFreightIncome  AccountPurpose = "FREIGHT_INCOME"
	PurposeFreightCharges AccountPurpose = "FREIGHT_CHARGES"
)

// Account represents one entry in the chart of accounts.
// Identity is the stable AccountCode; the code never changes after creation.
type Account struct {
	AccountCode  string         `json:"accountCode"` // Stable identifier (e.g., "AR_USD")
	Name         string         `json:"name"`        // Display name
	AccountType  AccountType    `json:"accountType"` // ASSET, LIABILITY, etc.
	ParentCode   *string        `json:"parentCode"`  // Nullable self-reference, tree for reporting rollups
	CurrencyCode *string        `json:"currencyCode"`
	Purpose      AccountPurpose `json:"purpose"`
	IsActive     bool           `json:"isActive"`
	AuditFields
}

package domain

// Currency represents a supported currency in the domain.
// Codes are stable identifiers; a currency is never removed once referenced
// by an account or a posted ledger row.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "INR")
	Name         string `json:"name"`         // e.g., "Indian Rupee"
	AuditFields
}

package models

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode string `db:"currency_code"` // Primary Key (e.g., "INR")
	Name         string `db:"name"`
	AuditFields
}

package models

// Customer is the party billed by sales invoices.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	SMark      string `db:"s_mark"` // Unique shipping mark
	AuditFields
}

// Agent is the overseas party billing purchase invoices.
// BankDetails is stored as a JSONB column.
type Agent struct {
	AgentID     string         `db:"agent_id"`
	Name        string         `db:"name"`
	BankDetails map[string]any `db:"bank_details"`
	AuditFields
}

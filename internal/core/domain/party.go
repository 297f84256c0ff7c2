package domain

// Customer is the party billed by sales invoices.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	SMark      string `json:"sMark"` // Unique shipping mark stamped on the customer's cargo
	AuditFields
}

// Agent is the overseas party billing purchase invoices (freight handling,
// customs, local transport).
type Agent struct {
	AgentID string `json:"agentID"` // Primary Key (e.g., UUID)
	Name    string `json:"name"`
	// Free-form per-currency bank details, e.g. {"USD": {...}, "RMB": {...}}
	BankDetails map[string]any `json:"bankDetails"`
	AuditFields
}

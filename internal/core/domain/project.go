package domain

// Project represents a single shipping container and is the profitability
// dimension of the ledger: documents and ledger rows carry an optional
// project tag, and net profit is derived per project from the ledger.
// A project is never deleted while ledger rows or documents reference it.
type Project struct {
	ProjectID       string `json:"projectID"` // Primary Key (e.g., UUID)
	ContainerNumber string `json:"containerNumber"`
	CustomerID      string `json:"customerID"`
	IsActive        bool   `json:"isActive"`
	AuditFields
}

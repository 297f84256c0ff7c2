package models

// Project represents a single shipping container, the profitability
// dimension applied to documents and ledger rows.
type Project struct {
	ProjectID       string `db:"project_id"`
	ContainerNumber string `db:"container_number"`
	CustomerID      string `db:"customer_id"`
	IsActive        bool   `db:"is_active"`
	AuditFields
}

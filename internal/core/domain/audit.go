package domain

import "time"

// AuditAction identifies the recorded operation. Submission is currently the
// only action this core performs.
type AuditAction string

const ActionSubmit AuditAction = "submit"

// AuditEntry is one immutable trail record, written exactly once per
// successful submission, in the same transaction as the ledger rows.
type AuditEntry struct {
	AuditID    string              `json:"auditID"` // Primary Key (e.g., UUID)
	UserID     string              `json:"userID"`
	Action     AuditAction         `json:"action"`
	EntityKind DocumentKind        `json:"entityKind"`
	EntityID   string              `json:"entityID"`
	Changes    map[string][]string `json:"changes"` // field -> [old, new]
	Details    string              `json:"details"`
	CreatedAt  time.Time           `json:"createdAt"`
}

package models

import "time"

// AuditEntry maps the audit_trail table. Changes is stored as JSONB.
type AuditEntry struct {
	AuditID    string              `db:"audit_id"`
	UserID     string              `db:"user_id"`
	Action     string              `db:"action"`
	EntityKind string              `db:"entity_kind"`
	EntityID   string              `db:"entity_id"`
	Changes    map[string][]string `db:"changes"`
	Details    string              `db:"details"`
	CreatedAt  time.Time           `db:"created_at"`
}

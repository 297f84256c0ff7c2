package mapping

import (
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/models"
)

// ToModelAuditEntry converts a domain AuditEntry to a model AuditEntry
func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		AuditID:    d.AuditID,
		UserID:     d.UserID,
		Action:     string(d.Action),
		EntityKind: string(d.EntityKind),
		EntityID:   d.EntityID,
		Changes:    d.Changes,
		Details:    d.Details,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainAuditEntry converts a model AuditEntry to a domain AuditEntry
func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		AuditID:    m.AuditID,
		UserID:     m.UserID,
		Action:     domain.AuditAction(m.Action),
		EntityKind: domain.DocumentKind(m.EntityKind),
		EntityID:   m.EntityID,
		Changes:    m.Changes,
		Details:    m.Details,
		CreatedAt:  m.CreatedAt,
	}
}

package mapping

import (
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/models"
)

// ToModelDocumentCore converts the shared workflow fields of a document.
func ToModelDocumentCore(d domain.DocumentCore) models.DocumentCore {
	return models.DocumentCore{
		DocumentID:  d.DocumentID,
		Status:      models.DocumentStatus(d.Status),
		ProjectID:   d.ProjectID,
		Notes:       d.Notes,
		SubmittedBy: d.SubmittedBy,
		SubmittedAt: d.SubmittedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocumentCore converts the shared workflow fields back to domain.
func ToDomainDocumentCore(m models.DocumentCore) domain.DocumentCore {
	return domain.DocumentCore{
		DocumentID:  m.DocumentID,
		Status:      domain.DocumentStatus(m.Status),
		ProjectID:   m.ProjectID,
		Notes:       m.Notes,
		SubmittedBy: m.SubmittedBy,
		SubmittedAt: m.SubmittedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSalesInvoice converts a domain SalesInvoice to its model
func ToModelSalesInvoice(d domain.SalesInvoice) models.SalesInvoice {
	return models.SalesInvoice{
		DocumentCore: ToModelDocumentCore(d.DocumentCore),
		CustomerID:   d.CustomerID,
		InvoiceDate:  d.InvoiceDate,
		DueDate:      d.DueDate,
		CurrencyCode: d.CurrencyCode,
		ExchangeRate: d.ExchangeRate,
		TotalAmount:  d.TotalAmount,
	}
}

// ToDomainSalesInvoice converts a model SalesInvoice to its domain form
func ToDomainSalesInvoice(m models.SalesInvoice) domain.SalesInvoice {
	return domain.SalesInvoice{
		DocumentCore: ToDomainDocumentCore(m.DocumentCore),
		CustomerID:   m.CustomerID,
		InvoiceDate:  m.InvoiceDate,
		DueDate:      m.DueDate,
		CurrencyCode: m.CurrencyCode,
		ExchangeRate: m.ExchangeRate,
		TotalAmount:  m.TotalAmount,
	}
}

// ToModelPurchaseInvoice converts a domain PurchaseInvoice to its model
func ToModelPurchaseInvoice(d domain.PurchaseInvoice) models.PurchaseInvoice {
	return models.PurchaseInvoice{
		DocumentCore: ToModelDocumentCore(d.DocumentCore),
		AgentID:      d.AgentID,
		InvoiceDate:  d.InvoiceDate,
		CurrencyCode: d.CurrencyCode,
		ExchangeRate: d.ExchangeRate,
		TotalAmount:  d.TotalAmount,
	}
}

// ToDomainPurchaseInvoice converts a model PurchaseInvoice to its domain form
func ToDomainPurchaseInvoice(m models.PurchaseInvoice) domain.PurchaseInvoice {
	return domain.PurchaseInvoice{
		DocumentCore: ToDomainDocumentCore(m.DocumentCore),
		AgentID:      m.AgentID,
		InvoiceDate:  m.InvoiceDate,
		CurrencyCode: m.CurrencyCode,
		ExchangeRate: m.ExchangeRate,
		TotalAmount:  m.TotalAmount,
	}
}

// ToModelPaymentEntry converts a domain PaymentEntry to its model
func ToModelPaymentEntry(d domain.PaymentEntry) models.PaymentEntry {
	return models.PaymentEntry{
		DocumentCore:      ToModelDocumentCore(d.DocumentCore),
		PaymentType:       string(d.PaymentType),
		PartyType:         string(d.PartyType),
		CustomerID:        d.CustomerID,
		AgentID:           d.AgentID,
		PaymentDate:       d.PaymentDate,
		CurrencyCode:      d.CurrencyCode,
		ExchangeRate:      d.ExchangeRate,
		Amount:            d.Amount,
		SourceAccountCode: d.SourceAccountCode,
		TargetAccountCode: d.TargetAccountCode,
	}
}

// ToDomainPaymentEntry converts a model PaymentEntry to its domain form
func ToDomainPaymentEntry(m models.PaymentEntry) domain.PaymentEntry {
	return domain.PaymentEntry{
		DocumentCore:      ToDomainDocumentCore(m.DocumentCore),
		PaymentType:       domain.PaymentType(m.PaymentType),
		PartyType:         domain.PartyType(m.PartyType),
		CustomerID:        m.CustomerID,
		AgentID:           m.AgentID,
		PaymentDate:       m.PaymentDate,
		CurrencyCode:      m.CurrencyCode,
		ExchangeRate:      m.ExchangeRate,
		Amount:            m.Amount,
		SourceAccountCode: m.SourceAccountCode,
		TargetAccountCode: m.TargetAccountCode,
	}
}

// ToModelJournalEntry converts a domain JournalEntry header to its model.
// Lines are mapped separately with ToModelJournalLines.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		DocumentCore: ToModelDocumentCore(d.DocumentCore),
		EntryDate:    d.EntryDate,
	}
}

// ToDomainJournalEntry converts a model JournalEntry header plus its lines
// to the domain form
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		DocumentCore: ToDomainDocumentCore(m.DocumentCore),
		EntryDate:    m.EntryDate,
		Lines:        ToDomainJournalLines(lines),
	}
}

// ToModelJournalLines converts domain journal lines to models, assigning
// their position within the entry.
func ToModelJournalLines(journalID string, lines []domain.JournalLine) []models.JournalLine {
	ms := make([]models.JournalLine, len(lines))
	for i, l := range lines {
		ms[i] = models.JournalLine{
			LineID:        l.LineID,
			JournalID:     journalID,
			LineSeq:       i,
			AccountCode:   l.AccountCode,
			CurrencyCode:  l.CurrencyCode,
			ExchangeRate:  l.ExchangeRate,
			DebitForeign:  l.DebitForeign,
			CreditForeign: l.CreditForeign,
		}
	}
	return ms
}

// ToDomainJournalLines converts model journal lines to domain lines
func ToDomainJournalLines(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = domain.JournalLine{
			LineID:        m.LineID,
			AccountCode:   m.AccountCode,
			CurrencyCode:  m.CurrencyCode,
			ExchangeRate:  m.ExchangeRate,
			DebitForeign:  m.DebitForeign,
			CreditForeign: m.CreditForeign,
		}
	}
	return ds
}

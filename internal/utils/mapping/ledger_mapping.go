package mapping

import (
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/models"
)

// ToModelLedgerRow converts a domain LedgerRow to a model LedgerRow
func ToModelLedgerRow(d domain.LedgerRow) models.LedgerRow {
	return models.LedgerRow{
		RowID:           d.RowID,
		AccountCode:     d.AccountCode,
		TransactionDate: d.TransactionDate,
		ProjectID:       d.ProjectID,
		DebitBase:       d.DebitBase,
		CreditBase:      d.CreditBase,
		DebitForeign:    d.DebitForeign,
		CreditForeign:   d.CreditForeign,
		CurrencyCode:    d.CurrencyCode,
		SourceKind:      string(d.SourceKind),
		SourceID:        d.SourceID,
		RowSeq:          d.RowSeq,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainLedgerRow converts a model LedgerRow to a domain LedgerRow
func ToDomainLedgerRow(m models.LedgerRow) domain.LedgerRow {
	return domain.LedgerRow{
		RowID:           m.RowID,
		AccountCode:     m.AccountCode,
		TransactionDate: m.TransactionDate,
		ProjectID:       m.ProjectID,
		DebitBase:       m.DebitBase,
		CreditBase:      m.CreditBase,
		DebitForeign:    m.DebitForeign,
		CreditForeign:   m.CreditForeign,
		CurrencyCode:    m.CurrencyCode,
		SourceKind:      domain.DocumentKind(m.SourceKind),
		SourceID:        m.SourceID,
		RowSeq:          m.RowSeq,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
}

// ToDomainLedgerRowSlice converts a slice of model LedgerRows to domain rows
func ToDomainLedgerRowSlice(ms []models.LedgerRow) []domain.LedgerRow {
	ds := make([]domain.LedgerRow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerRow(m)
	}
	return ds
}

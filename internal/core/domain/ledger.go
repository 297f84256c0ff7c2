package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one debit or credit entry in the append-only general ledger.
// Rows are created only by document submission and are never updated or
// deleted afterwards. A row never carries both a base debit and a base
// credit; exactly one side is nonzero.
type LedgerRow struct {
	RowID           string          `json:"rowID"` // Primary Key (e.g., UUID)
	AccountCode     string          `json:"accountCode"`
	TransactionDate time.Time       `json:"transactionDate"`
	ProjectID       *string         `json:"projectID"` // Nullable profitability tag
	DebitBase       decimal.Decimal `json:"debitBase"`
	CreditBase      decimal.Decimal `json:"creditBase"`
	DebitForeign    decimal.Decimal `json:"debitForeign"`
	CreditForeign   decimal.Decimal `json:"creditForeign"`
	CurrencyCode    string          `json:"currencyCode"`
	SourceKind      DocumentKind    `json:"sourceKind"`
	SourceID        string          `json:"sourceID"`
	RowSeq          int             `json:"rowSeq"` // Position within the source document's posting batch
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// Source returns the typed reference to the document that produced the row.
func (r LedgerRow) Source() DocumentRef {
	return DocumentRef{Kind: r.SourceKind, ID: r.SourceID}
}

// LedgerFilter narrows a ledger query. Zero-valued fields are ignored.
// Results are always ordered by insertion.
type LedgerFilter struct {
	ProjectID   *string
	AccountCode *string
	DateFrom    *time.Time
	DateTo      *time.Time
}

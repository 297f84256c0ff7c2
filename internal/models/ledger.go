package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow maps the append-only ledger_rows table. Rows are only ever
// inserted; there is no update path.
type LedgerRow struct {
	RowID           string          `db:"row_id"`
	RowOrdinal      int64           `db:"row_ordinal"` // Assigned by the database on insert
	AccountCode     string          `db:"account_code"`
	TransactionDate time.Time       `db:"transaction_date"`
	ProjectID       *string         `db:"project_id"` // Nullable
	DebitBase       decimal.Decimal `db:"debit_base"`
	CreditBase      decimal.Decimal `db:"credit_base"`
	DebitForeign    decimal.Decimal `db:"debit_foreign"`
	CreditForeign   decimal.Decimal `db:"credit_foreign"`
	CurrencyCode    string          `db:"currency_code"`
	SourceKind      string          `db:"source_kind"`
	SourceID        string          `db:"source_id"`
	RowSeq          int             `db:"row_seq"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}

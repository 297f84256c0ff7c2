package dto

import (
	"time"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerQueryParams narrows a ledger listing. All filters are optional.
type LedgerQueryParams struct {
	ProjectID   *string    `form:"projectID"`
	AccountCode *string    `form:"accountCode"`
	DateFrom    *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo      *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit       int        `form:"limit"`
	NextToken   *string    `form:"nextToken"`
}

// LedgerRowResponse defines the data returned for one ledger row.
type LedgerRowResponse struct {
	RowID           string          `json:"rowID"`
	AccountCode     string          `json:"accountCode"`
	TransactionDate time.Time       `json:"transactionDate"`
	ProjectID       *string         `json:"projectID,omitempty"`
	DebitBase       decimal.Decimal `json:"debitBase"`
	CreditBase      decimal.Decimal `json:"creditBase"`
	DebitForeign    decimal.Decimal `json:"debitForeign"`
	CreditForeign   decimal.Decimal `json:"creditForeign"`
	CurrencyCode    string          `json:"currencyCode"`
	SourceKind      string          `json:"sourceKind"`
	SourceID        string          `json:"sourceID"`
}

// ListLedgerRowsResponse is the paginated ledger listing.
type ListLedgerRowsResponse struct {
	Rows      []LedgerRowResponse `json:"rows"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToLedgerRowResponse converts a domain.LedgerRow to LedgerRowResponse DTO.
func ToLedgerRowResponse(r *domain.LedgerRow) LedgerRowResponse {
	return LedgerRowResponse{
		RowID:           r.RowID,
		AccountCode:     r.AccountCode,
		TransactionDate: r.TransactionDate,
		ProjectID:       r.ProjectID,
		DebitBase:       r.DebitBase,
		CreditBase:      r.CreditBase,
		DebitForeign:    r.DebitForeign,
		CreditForeign:   r.CreditForeign,
		CurrencyCode:    r.CurrencyCode,
		SourceKind:      string(r.SourceKind),
		SourceID:        r.SourceID,
	}
}

// ToLedgerRowResponses converts a slice of domain.LedgerRow.
func ToLedgerRowResponses(rows []domain.LedgerRow) []LedgerRowResponse {
	responses := make([]LedgerRowResponse, len(rows))
	for i := range rows {
		responses[i] = ToLedgerRowResponse(&rows[i])
	}
	return responses
}

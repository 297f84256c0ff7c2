package dto

import (
	"time"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalesInvoiceRequest defines the payload for drafting a sales invoice.
type CreateSalesInvoiceRequest struct {
	ProjectID    *string         `json:"projectID"`
	CustomerID   string          `json:"customerID" binding:"required"`
	InvoiceDate  time.Time       `json:"invoiceDate" binding:"required"`
	DueDate      time.Time       `json:"dueDate" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
	ExchangeRate decimal.Decimal `json:"exchangeRate" binding:"required"`
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required"`
	Notes        string          `json:"notes"`
}

// UpdateSalesInvoiceRequest defines partial updates to a draft sales invoice.
type UpdateSalesInvoiceRequest struct {
	ProjectID    *string          `json:"projectID"`
	CustomerID   *string          `json:"customerID"`
	InvoiceDate  *time.Time       `json:"invoiceDate"`
	DueDate      *time.Time       `json:"dueDate"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,len=3"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	TotalAmount  *decimal.Decimal `json:"totalAmount"`
	Notes        *string          `json:"notes"`
}

// CreatePurchaseInvoiceRequest defines the payload for drafting a purchase invoice.
type CreatePurchaseInvoiceRequest struct {
	ProjectID    *string         `json:"projectID"`
	AgentID      string          `json:"agentID" binding:"required"`
	InvoiceDate  time.Time       `json:"invoiceDate" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
	ExchangeRate decimal.Decimal `json:"exchangeRate" binding:"required"`
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required"`
	Notes        string          `json:"notes"`
}

// UpdatePurchaseInvoiceRequest defines partial updates to a draft purchase invoice.
type UpdatePurchaseInvoiceRequest struct {
	ProjectID    *string          `json:"projectID"`
	AgentID      *string          `json:"agentID"`
	InvoiceDate  *time.Time       `json:"invoiceDate"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,len=3"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	TotalAmount  *decimal.Decimal `json:"totalAmount"`
	Notes        *string          `json:"notes"`
}

// CreatePaymentEntryRequest defines the payload for drafting a payment entry.
type CreatePaymentEntryRequest struct {
	ProjectID         *string         `json:"projectID"`
	PaymentType       string          `json:"paymentType" binding:"required,oneof=RECEIVE PAY"`
	PartyType         string          `json:"partyType" binding:"required,oneof=CUSTOMER AGENT"`
	CustomerID        *string         `json:"customerID"`
	AgentID           *string         `json:"agentID"`
	PaymentDate       time.Time       `json:"paymentDate" binding:"required"`
	CurrencyCode      string          `json:"currencyCode" binding:"required,len=3"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	SourceAccountCode string          `json:"sourceAccountCode" binding:"required"`
	TargetAccountCode string          `json:"targetAccountCode" binding:"required"`
	Notes             string          `json:"notes"`
}

// UpdatePaymentEntryRequest defines partial updates to a draft payment entry.
type UpdatePaymentEntryRequest struct {
	ProjectID         *string          `json:"projectID"`
	PaymentDate       *time.Time       `json:"paymentDate"`
	CurrencyCode      *string          `json:"currencyCode" binding:"omitempty,len=3"`
	ExchangeRate      *decimal.Decimal `json:"exchangeRate"`
	Amount            *decimal.Decimal `json:"amount"`
	SourceAccountCode *string          `json:"sourceAccountCode"`
	TargetAccountCode *string          `json:"targetAccountCode"`
	Notes             *string          `json:"notes"`
}

// JournalLineRequest is one leg of a journal entry draft.
type JournalLineRequest struct {
	AccountCode   string          `json:"accountCode" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate" binding:"required"`
	DebitForeign  decimal.Decimal `json:"debitForeign"`
	CreditForeign decimal.Decimal `json:"creditForeign"`
}

// CreateJournalEntryRequest defines the payload for drafting a journal entry.
type CreateJournalEntryRequest struct {
	ProjectID *string              `json:"projectID"`
	EntryDate time.Time            `json:"entryDate" binding:"required"`
	Lines     []JournalLineRequest `json:"lines" binding:"required,dive"`
	Notes     string               `json:"notes"`
}

// UpdateJournalEntryRequest defines partial updates to a draft journal entry.
// Lines, when present, replace the draft's lines wholesale.
type UpdateJournalEntryRequest struct {
	ProjectID *string              `json:"projectID"`
	EntryDate *time.Time           `json:"entryDate"`
	Lines     []JournalLineRequest `json:"lines" binding:"omitempty,dive"`
	Notes     *string              `json:"notes"`
}

// JournalLineResponse mirrors one journal entry leg.
type JournalLineResponse struct {
	LineID        string          `json:"lineID"`
	AccountCode   string          `json:"accountCode"`
	CurrencyCode  string          `json:"currencyCode"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	DebitForeign  decimal.Decimal `json:"debitForeign"`
	CreditForeign decimal.Decimal `json:"creditForeign"`
}

// DocumentResponse is the generic view over any document variant. Exactly one
// of the variant sections is populated, matching Kind.
type DocumentResponse struct {
	Kind        string     `json:"kind"`
	DocumentID  string     `json:"documentID"`
	Status      string     `json:"status"`
	ProjectID   *string    `json:"projectID,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	SubmittedBy *string    `json:"submittedBy,omitempty"`

	SalesInvoice    *SalesInvoiceFields    `json:"salesInvoice,omitempty"`
	PurchaseInvoice *PurchaseInvoiceFields `json:"purchaseInvoice,omitempty"`
	PaymentEntry    *PaymentEntryFields    `json:"paymentEntry,omitempty"`
	JournalEntry    *JournalEntryFields    `json:"journalEntry,omitempty"`
}

// SalesInvoiceFields carries the sales-invoice specific fields of a DocumentResponse.
type SalesInvoiceFields struct {
	CustomerID   string          `json:"customerID"`
	InvoiceDate  time.Time       `json:"invoiceDate"`
	DueDate      time.Time       `json:"dueDate"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// PurchaseInvoiceFields carries the purchase-invoice specific fields of a DocumentResponse.
type PurchaseInvoiceFields struct {
	AgentID      string          `json:"agentID"`
	InvoiceDate  time.Time       `json:"invoiceDate"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// PaymentEntryFields carries the payment-entry specific fields of a DocumentResponse.
type PaymentEntryFields struct {
	PaymentType       string          `json:"paymentType"`
	PartyType         string          `json:"partyType"`
	CustomerID        *string         `json:"customerID,omitempty"`
	AgentID           *string         `json:"agentID,omitempty"`
	PaymentDate       time.Time       `json:"paymentDate"`
	CurrencyCode      string          `json:"currencyCode"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	Amount            decimal.Decimal `json:"amount"`
	SourceAccountCode string          `json:"sourceAccountCode"`
	TargetAccountCode string          `json:"targetAccountCode"`
}

// JournalEntryFields carries the journal-entry specific fields of a DocumentResponse.
type JournalEntryFields struct {
	EntryDate time.Time             `json:"entryDate"`
	Lines     []JournalLineResponse `json:"lines"`
}

// ListDocumentsParams holds parameters for listing documents of one kind.
type ListDocumentsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListDocumentsResponse is the paginated document list.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToDocumentResponse converts any domain document variant to the generic DTO.
func ToDocumentResponse(doc domain.Document) DocumentResponse {
	base := doc.Base()
	resp := DocumentResponse{
		Kind:        string(doc.Kind()),
		DocumentID:  base.DocumentID,
		Status:      string(base.Status),
		ProjectID:   base.ProjectID,
		Notes:       base.Notes,
		CreatedAt:   base.CreatedAt,
		CreatedBy:   base.CreatedBy,
		SubmittedAt: base.SubmittedAt,
		SubmittedBy: base.SubmittedBy,
	}

	switch d := doc.(type) {
	case *domain.SalesInvoice:
		resp.SalesInvoice = &SalesInvoiceFields{
			CustomerID:   d.CustomerID,
			InvoiceDate:  d.InvoiceDate,
			DueDate:      d.DueDate,
			CurrencyCode: d.CurrencyCode,
			ExchangeRate: d.ExchangeRate,
			TotalAmount:  d.TotalAmount,
		}
	case *domain.PurchaseInvoice:
		resp.PurchaseInvoice = &PurchaseInvoiceFields{
			AgentID:      d.AgentID,
			InvoiceDate:  d.InvoiceDate,
			CurrencyCode: d.CurrencyCode,
			ExchangeRate: d.ExchangeRate,
			TotalAmount:  d.TotalAmount,
		}
	case *domain.PaymentEntry:
		resp.PaymentEntry = &PaymentEntryFields{
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
	case *domain.JournalEntry:
		lines := make([]JournalLineResponse, len(d.Lines))
		for i, line := range d.Lines {
			lines[i] = JournalLineResponse{
				LineID:        line.LineID,
				AccountCode:   line.AccountCode,
				CurrencyCode:  line.CurrencyCode,
				ExchangeRate:  line.ExchangeRate,
				DebitForeign:  line.DebitForeign,
				CreditForeign: line.CreditForeign,
			}
		}
		resp.JournalEntry = &JournalEntryFields{
			EntryDate: d.EntryDate,
			Lines:     lines,
		}
	}

	return resp
}

// ToDocumentResponses converts a slice of domain documents.
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = ToDocumentResponse(doc)
	}
	return responses
}

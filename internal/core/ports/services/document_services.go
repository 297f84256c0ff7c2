package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/dto"
)

// DocumentSvcFacade manages draft financial documents. Creation and update
// are available only while a document is in Draft; submission is the
// SubmissionSvcFacade's job.
type DocumentSvcFacade interface {
	CreateSalesInvoice(ctx context.Context, req dto.CreateSalesInvoiceRequest, creatorUserID string) (*domain.SalesInvoice, error)
	CreatePurchaseInvoice(ctx context.Context, req dto.CreatePurchaseInvoiceRequest, creatorUserID string) (*domain.PurchaseInvoice, error)
	CreatePaymentEntry(ctx context.Context, req dto.CreatePaymentEntryRequest, creatorUserID string) (*domain.PaymentEntry, error)
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	UpdateSalesInvoice(ctx context.Context, documentID string, req dto.UpdateSalesInvoiceRequest, userID string) (*domain.SalesInvoice, error)
	UpdatePurchaseInvoice(ctx context.Context, documentID string, req dto.UpdatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error)
	UpdatePaymentEntry(ctx context.Context, documentID string, req dto.UpdatePaymentEntryRequest, userID string) (*domain.PaymentEntry, error)
	UpdateJournalEntry(ctx context.Context, documentID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	GetDocument(ctx context.Context, ref domain.DocumentRef) (domain.Document, error)
	ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error)
}

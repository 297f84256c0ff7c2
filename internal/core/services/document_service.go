package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/freightops/erpshipping/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultDocumentListLimit = 20

// DocumentService manages draft financial documents. Every write here
// operates strictly on Draft documents; posting is the submission
// service's job.
type DocumentService struct {
	documentRepo portsrepo.DocumentRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	agentRepo    portsrepo.AgentRepositoryFacade
	projectRepo  portsrepo.ProjectRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

func NewDocumentService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	agentRepo portsrepo.AgentRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		customerRepo: customerRepo,
		agentRepo:    agentRepo,
		projectRepo:  projectRepo,
		currencyRepo: currencyRepo,
	}
}

func (s *DocumentService) validateProject(ctx context.Context, projectID *string) error {
	if projectID == nil {
		return nil
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, *projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: project %s does not exist", apperrors.ErrValidation, *projectID)
		}
		return err
	}
	return nil
}

func (s *DocumentService) validateCurrency(ctx context.Context, currencyCode string) error {
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: currency %s is not registered", apperrors.ErrValidation, currencyCode)
		}
		return err
	}
	return nil
}

func validatePositive(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, name)
	}
	return nil
}

func newDocumentCore(projectID *string, notes, creatorUserID string) domain.DocumentCore {
	now := time.Now()
	return domain.DocumentCore{
		DocumentID: uuid.NewString(),
		Status:     domain.Draft,
		ProjectID:  projectID,
		Notes:      notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
}

func (s *DocumentService) CreateSalesInvoice(ctx context.Context, req dto.CreateSalesInvoiceRequest, creatorUserID string) (*domain.SalesInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}
	if err := s.validateProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if err := s.validateCurrency(ctx, req.CurrencyCode); err != nil {
		return nil, err
	}
	if err := validatePositive("exchangeRate", req.ExchangeRate); err != nil {
		return nil, err
	}
	if err := validatePositive("totalAmount", req.TotalAmount); err != nil {
		return nil, err
	}

	invoice := domain.SalesInvoice{
		DocumentCore: newDocumentCore(req.ProjectID, req.Notes, creatorUserID),
		CustomerID:   req.CustomerID,
		InvoiceDate:  req.InvoiceDate,
		DueDate:      req.DueDate,
		CurrencyCode: req.CurrencyCode,
		ExchangeRate: req.ExchangeRate,
		TotalAmount:  req.TotalAmount,
	}

	if err := s.documentRepo.SaveDocument(ctx, &invoice); err != nil {
		logger.Error("Failed to save sales invoice draft", slog.String("error", err.Error()), slog.String("document_id", invoice.DocumentID))
		return nil, err
	}

	logger.Info("Sales invoice drafted", slog.String("document_id", invoice.DocumentID))
	return &invoice, nil
}

func (s *DocumentService) CreatePurchaseInvoice(ctx context.Context, req dto.CreatePurchaseInvoiceRequest, creatorUserID string) (*domain.PurchaseInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.agentRepo.FindAgentByID(ctx, req.AgentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: agent %s does not exist", apperrors.ErrValidation, req.AgentID)
		}
		return nil, err
	}
	if err := s.validateProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if err := s.validateCurrency(ctx, req.CurrencyCode); err != nil {
		return nil, err
	}
	if err := validatePositive("exchangeRate", req.ExchangeRate); err != nil {
		return nil, err
	}
	if err := validatePositive("totalAmount", req.TotalAmount); err != nil {
		return nil, err
	}

	invoice := domain.PurchaseInvoice{
		DocumentCore: newDocumentCore(req.ProjectID, req.Notes, creatorUserID),
		AgentID:      req.AgentID,
		InvoiceDate:  req.InvoiceDate,
		CurrencyCode: req.CurrencyCode,
		ExchangeRate: req.ExchangeRate,
		TotalAmount:  req.TotalAmount,
	}

	if err := s.documentRepo.SaveDocument(ctx, &invoice); err != nil {
		logger.Error("Failed to save purchase invoice draft", slog.String("error", err.Error()), slog.String("document_id", invoice.DocumentID))
		return nil, err
	}

	logger.Info("Purchase invoice drafted", slog.String("document_id", invoice.DocumentID))
	return &invoice, nil
}

func (s *DocumentService) CreatePaymentEntry(ctx context.Context, req dto.CreatePaymentEntryRequest, creatorUserID string) (*domain.PaymentEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partyType := domain.PartyType(req.PartyType)
	switch partyType {
	case domain.PartyCustomer:
		if req.CustomerID == nil {
			return nil, fmt.Errorf("%w: customerID is required for party type CUSTOMER", apperrors.ErrValidation)
		}
		if _, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, *req.CustomerID)
			}
			return nil, err
		}
	case domain.PartyAgent:
		if req.AgentID == nil {
			return nil, fmt.Errorf("%w: agentID is required for party type AGENT", apperrors.ErrValidation)
		}
		if _, err := s.agentRepo.FindAgentByID(ctx, *req.AgentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: agent %s does not exist", apperrors.ErrValidation, *req.AgentID)
			}
			return nil, err
		}
	}
	if req.SourceAccountCode == req.TargetAccountCode {
		return nil, fmt.Errorf("%w: source and target accounts must differ", apperrors.ErrValidation)
	}
	if err := s.validateProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if err := s.validateCurrency(ctx, req.CurrencyCode); err != nil {
		return nil, err
	}
	if err := validatePositive("exchangeRate", req.ExchangeRate); err != nil {
		return nil, err
	}
	if err := validatePositive("amount", req.Amount); err != nil {
		return nil, err
	}

	payment := domain.PaymentEntry{
		DocumentCore:      newDocumentCore(req.ProjectID, req.Notes, creatorUserID),
		PaymentType:       domain.PaymentType(req.PaymentType),
		PartyType:         partyType,
		CustomerID:        req.CustomerID,
		AgentID:           req.AgentID,
		PaymentDate:       req.PaymentDate,
		CurrencyCode:      req.CurrencyCode,
		ExchangeRate:      req.ExchangeRate,
		Amount:            req.Amount,
		SourceAccountCode: req.SourceAccountCode,
		TargetAccountCode: req.TargetAccountCode,
	}

	if err := s.documentRepo.SaveDocument(ctx, &payment); err != nil {
		logger.Error("Failed to save payment entry draft", slog.String("error", err.Error()), slog.String("document_id", payment.DocumentID))
		return nil, err
	}

	logger.Info("Payment entry drafted", slog.String("document_id", payment.DocumentID))
	return &payment, nil
}

func (s *DocumentService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	lines, err := s.buildJournalLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		DocumentCore: newDocumentCore(req.ProjectID, req.Notes, creatorUserID),
		EntryDate:    req.EntryDate,
		Lines:        lines,
	}

	if err := s.documentRepo.SaveDocument(ctx, &entry); err != nil {
		logger.Error("Failed to save journal entry draft", slog.String("error", err.Error()), slog.String("document_id", entry.DocumentID))
		return nil, err
	}

	logger.Info("Journal entry drafted", slog.String("document_id", entry.DocumentID), slog.Int("lines", len(entry.Lines)))
	return &entry, nil
}

// buildJournalLines validates draft journal lines and assigns line IDs.
// Zero lines are accepted in drafts; the posting rules skip them at
// submission time.
func (s *DocumentService) buildJournalLines(ctx context.Context, reqs []dto.JournalLineRequest) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, len(reqs))
	for i, lr := range reqs {
		if err := s.validateCurrency(ctx, lr.CurrencyCode); err != nil {
			return nil, err
		}
		if err := validatePositive("exchangeRate", lr.ExchangeRate); err != nil {
			return nil, err
		}
		if lr.DebitForeign.IsNegative() || lr.CreditForeign.IsNegative() {
			return nil, fmt.Errorf("%w: line %d amounts must not be negative", apperrors.ErrValidation, i)
		}
		if !lr.DebitForeign.IsZero() && !lr.CreditForeign.IsZero() {
			return nil, fmt.Errorf("%w: line %d has both a debit and a credit", apperrors.ErrValidation, i)
		}
		lines[i] = domain.JournalLine{
			LineID:        uuid.NewString(),
			AccountCode:   lr.AccountCode,
			CurrencyCode:  lr.CurrencyCode,
			ExchangeRate:  lr.ExchangeRate,
			DebitForeign:  lr.DebitForeign,
			CreditForeign: lr.CreditForeign,
		}
	}
	return lines, nil
}

// fetchDraft loads the document and ensures it is still editable.
func (s *DocumentService) fetchDraft(ctx context.Context, ref domain.DocumentRef) (domain.Document, error) {
	doc, err := s.documentRepo.FindDocument(ctx, ref)
	if err != nil {
		return nil, err
	}
	if doc.Base().Status != domain.Draft {
		return nil, fmt.Errorf("%w: document %s is %s", apperrors.ErrDocumentNotDraft, ref.ID, doc.Base().Status)
	}
	return doc, nil
}

func (s *DocumentService) touch(core *domain.DocumentCore, userID string) {
	core.LastUpdatedAt = time.Now()
	core.LastUpdatedBy = userID
}

func (s *DocumentService) UpdateSalesInvoice(ctx context.Context, documentID string, req dto.UpdateSalesInvoiceRequest, userID string) (*domain.SalesInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.fetchDraft(ctx, domain.DocumentRef{Kind: domain.KindSalesInvoice, ID: documentID})
	if err != nil {
		return nil, err
	}
	invoice := doc.(*domain.SalesInvoice)

	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, *req.CustomerID)
			}
			return nil, err
		}
		invoice.CustomerID = *req.CustomerID
	}
	if req.ProjectID != nil {
		if err := s.validateProject(ctx, req.ProjectID); err != nil {
			return nil, err
		}
		invoice.ProjectID = req.ProjectID
	}
	if req.InvoiceDate != nil {
		invoice.InvoiceDate = *req.InvoiceDate
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.CurrencyCode != nil {
		if err := s.validateCurrency(ctx, *req.CurrencyCode); err != nil {
			return nil, err
		}
		invoice.CurrencyCode = *req.CurrencyCode
	}
	if req.ExchangeRate != nil {
		if err := validatePositive("exchangeRate", *req.ExchangeRate); err != nil {
			return nil, err
		}
		invoice.ExchangeRate = *req.ExchangeRate
	}
	if req.TotalAmount != nil {
		if err := validatePositive("totalAmount", *req.TotalAmount); err != nil {
			return nil, err
		}
		invoice.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	s.touch(&invoice.DocumentCore, userID)

	if err := s.documentRepo.UpdateDraftDocument(ctx, invoice); err != nil {
		if !errors.Is(err, apperrors.ErrDocumentNotDraft) {
			logger.Error("Failed to update sales invoice draft", slog.String("error", err.Error()), slog.String("document_id", documentID))
		}
		return nil, err
	}

	return invoice, nil
}

func (s *DocumentService) UpdatePurchaseInvoice(ctx context.Context, documentID string, req dto.UpdatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.fetchDraft(ctx, domain.DocumentRef{Kind: domain.KindPurchaseInvoice, ID: documentID})
	if err != nil {
		return nil, err
	}
	invoice := doc.(*domain.PurchaseInvoice)

	if req.AgentID != nil {
		if _, err := s.agentRepo.FindAgentByID(ctx, *req.AgentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: agent %s does not exist", apperrors.ErrValidation, *req.AgentID)
			}
			return nil, err
		}
		invoice.AgentID = *req.AgentID
	}
	if req.ProjectID != nil {
		if err := s.validateProject(ctx, req.ProjectID); err != nil {
			return nil, err
		}
		invoice.ProjectID = req.ProjectID
	}
	if req.InvoiceDate != nil {
		invoice.InvoiceDate = *req.InvoiceDate
	}
	if req.CurrencyCode != nil {
		if err := s.validateCurrency(ctx, *req.CurrencyCode); err != nil {
			return nil, err
		}
		invoice.CurrencyCode = *req.CurrencyCode
	}
	if req.ExchangeRate != nil {
		if err := validatePositive("exchangeRate", *req.ExchangeRate); err != nil {
			return nil, err
		}
		invoice.ExchangeRate = *req.ExchangeRate
	}
	if req.TotalAmount != nil {
		if err := validatePositive("totalAmount", *req.TotalAmount); err != nil {
			return nil, err
		}
		invoice.TotalAmount = *req.TotalAmount
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	s.touch(&invoice.DocumentCore, userID)

	if err := s.documentRepo.UpdateDraftDocument(ctx, invoice); err != nil {
		if !errors.Is(err, apperrors.ErrDocumentNotDraft) {
			logger.Error("Failed to update purchase invoice draft", slog.String("error", err.Error()), slog.String("document_id", documentID))
		}
		return nil, err
	}

	return invoice, nil
}

func (s *DocumentService) UpdatePaymentEntry(ctx context.Context, documentID string, req dto.UpdatePaymentEntryRequest, userID string) (*domain.PaymentEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.fetchDraft(ctx, domain.DocumentRef{Kind: domain.KindPaymentEntry, ID: documentID})
	if err != nil {
		return nil, err
	}
	payment := doc.(*domain.PaymentEntry)

	if req.ProjectID != nil {
		if err := s.validateProject(ctx, req.ProjectID); err != nil {
			return nil, err
		}
		payment.ProjectID = req.ProjectID
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.CurrencyCode != nil {
		if err := s.validateCurrency(ctx, *req.CurrencyCode); err != nil {
			return nil, err
		}
		payment.CurrencyCode = *req.CurrencyCode
	}
	if req.ExchangeRate != nil {
		if err := validatePositive("exchangeRate", *req.ExchangeRate); err != nil {
			return nil, err
		}
		payment.ExchangeRate = *req.ExchangeRate
	}
	if req.Amount != nil {
		if err := validatePositive("amount", *req.Amount); err != nil {
			return nil, err
		}
		payment.Amount = *req.Amount
	}
	if req.SourceAccountCode != nil {
		payment.SourceAccountCode = *req.SourceAccountCode
	}
	if req.TargetAccountCode != nil {
		payment.TargetAccountCode = *req.TargetAccountCode
	}
	if payment.SourceAccountCode == payment.TargetAccountCode {
		return nil, fmt.Errorf("%w: source and target accounts must differ", apperrors.ErrValidation)
	}
	if req.Notes != nil {
		payment.Notes = *req.Notes
	}
	s.touch(&payment.DocumentCore, userID)

	if err := s.documentRepo.UpdateDraftDocument(ctx, payment); err != nil {
		if !errors.Is(err, apperrors.ErrDocumentNotDraft) {
			logger.Error("Failed to update payment entry draft", slog.String("error", err.Error()), slog.String("document_id", documentID))
		}
		return nil, err
	}

	return payment, nil
}

func (s *DocumentService) UpdateJournalEntry(ctx context.Context, documentID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc, err := s.fetchDraft(ctx, domain.DocumentRef{Kind: domain.KindJournalEntry, ID: documentID})
	if err != nil {
		return nil, err
	}
	entry := doc.(*domain.JournalEntry)

	if req.ProjectID != nil {
		if err := s.validateProject(ctx, req.ProjectID); err != nil {
			return nil, err
		}
		entry.ProjectID = req.ProjectID
	}
	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.Lines != nil {
		// Lines replace the draft's lines wholesale.
		lines, err := s.buildJournalLines(ctx, req.Lines)
		if err != nil {
			return nil, err
		}
		entry.Lines = lines
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	s.touch(&entry.DocumentCore, userID)

	if err := s.documentRepo.UpdateDraftDocument(ctx, entry); err != nil {
		if !errors.Is(err, apperrors.ErrDocumentNotDraft) {
			logger.Error("Failed to update journal entry draft", slog.String("error", err.Error()), slog.String("document_id", documentID))
		}
		return nil, err
	}

	return entry, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, ref domain.DocumentRef) (domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	doc, err := s.documentRepo.FindDocument(ctx, ref)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find document in repository", slog.String("error", err.Error()), slog.String("document_id", ref.ID), slog.String("kind", string(ref.Kind)))
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultDocumentListLimit
	}

	docs, nextToken, err := s.documentRepo.ListDocuments(ctx, kind, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list documents from repository", slog.String("error", err.Error()), slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return &dto.ListDocumentsResponse{
		Documents: dto.ToDocumentResponses(docs),
		NextToken: nextToken,
	}, nil
}

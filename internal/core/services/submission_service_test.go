package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) FindDocument(ctx context.Context, ref domain.DocumentRef) (domain.Document, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, kind domain.DocumentKind, limit int, nextToken *string) ([]domain.Document, *string, error) {
	args := m.Called(ctx, kind, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		v := args.Get(1).(string)
		token = &v
	}
	return args.Get(0).([]domain.Document), token, args.Error(2)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateDraftDocument(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) ListRows(ctx context.Context, filter domain.LedgerFilter, limit int, nextToken *string) ([]domain.LedgerRow, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		v := args.Get(1).(string)
		token = &v
	}
	return args.Get(0).([]domain.LedgerRow), token, args.Error(2)
}

func (m *MockLedgerRepository) CountRowsForSource(ctx context.Context, ref domain.DocumentRef) (int, error) {
	args := m.Called(ctx, ref)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerRepository) PostDocument(ctx context.Context, doc domain.Document, rows []domain.LedgerRow, audit domain.AuditEntry) error {
	args := m.Called(ctx, doc, rows, audit)
	return args.Error(0)
}

// --- Mock AccountSource ---
type MockPostingAccountSource struct {
	mock.Mock
}

func (m *MockPostingAccountSource) AccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockPostingAccountSource) PurposeAccount(ctx context.Context, purpose domain.AccountPurpose, currencyCode string) (*domain.Account, error) {
	args := m.Called(ctx, purpose, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock ProfitInvalidator ---
type MockProfitInvalidator struct {
	mock.Mock
}

func (m *MockProfitInvalidator) InvalidateProjectProfit(ctx context.Context, projectID string) {
	m.Called(ctx, projectID)
}

type SubmissionServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo *MockDocumentRepository
	mockLedgerRepo   *MockLedgerRepository
	mockAccounts     *MockPostingAccountSource
	mockInvalidator  *MockProfitInvalidator
	service          *services.SubmissionService

	actorID   string
	projectID string
}

func (s *SubmissionServiceTestSuite) SetupTest() {
	s.mockDocumentRepo = new(MockDocumentRepository)
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockAccounts = new(MockPostingAccountSource)
	s.mockInvalidator = new(MockProfitInvalidator)
	s.service = services.NewSubmissionService(s.mockDocumentRepo, s.mockLedgerRepo, s.mockAccounts, s.mockInvalidator)

	s.actorID = uuid.NewString()
	s.projectID = uuid.NewString()
}

func (s *SubmissionServiceTestSuite) draftSalesInvoice() *domain.SalesInvoice {
	return &domain.SalesInvoice{
		DocumentCore: domain.DocumentCore{
			DocumentID: uuid.NewString(),
			Status:     domain.Draft,
			ProjectID:  &s.projectID,
		},
		CustomerID:   uuid.NewString(),
		InvoiceDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		ExchangeRate: decimal.RequireFromString("83.50"),
		TotalAmount:  decimal.RequireFromString("1000"),
	}
}

func (s *SubmissionServiceTestSuite) account(code string, accType domain.AccountType) *domain.Account {
	return &domain.Account{AccountCode: code, AccountType: accType, IsActive: true}
}

func (s *SubmissionServiceTestSuite) TestSubmitSalesInvoice() {
	ctx := context.Background()
	invoice := s.draftSalesInvoice()
	ref := invoice.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(invoice, nil).Once()
	s.mockLedgerRepo.On("CountRowsForSource", ctx, ref).Return(0, nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeReceivable, "USD").Return(s.account("AR_USD", domain.Asset), nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeFreightIncome, "").Return(s.account("FREIGHT_INCOME", domain.Income), nil).Once()
	s.mockInvalidator.On("InvalidateProjectProfit", ctx, s.projectID).Once()

	var postedRows []domain.LedgerRow
	var postedAudit domain.AuditEntry
	s.mockLedgerRepo.On("PostDocument", ctx, invoice, mock.AnythingOfType("[]domain.LedgerRow"), mock.AnythingOfType("domain.AuditEntry")).
		Run(func(args mock.Arguments) {
			postedRows = args.Get(2).([]domain.LedgerRow)
			postedAudit = args.Get(3).(domain.AuditEntry)
		}).Return(nil).Once()

	doc, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().NoError(err)
	s.Require().NotNil(doc)
	s.Equal(domain.Submitted, doc.Base().Status)
	s.Require().NotNil(doc.Base().SubmittedBy)
	s.Equal(s.actorID, *doc.Base().SubmittedBy)
	s.NotNil(doc.Base().SubmittedAt)

	s.Require().Len(postedRows, 2)
	s.Equal("AR_USD", postedRows[0].AccountCode)
	s.True(postedRows[0].DebitBase.Equal(decimal.RequireFromString("83500.00")), "debit base was %s", postedRows[0].DebitBase)
	s.True(postedRows[0].DebitForeign.Equal(decimal.RequireFromString("1000")))
	s.Equal("FREIGHT_INCOME", postedRows[1].AccountCode)
	s.True(postedRows[1].CreditBase.Equal(decimal.RequireFromString("83500.00")))
	for i, row := range postedRows {
		s.Equal(i, row.RowSeq)
		s.NotEmpty(row.RowID)
		s.Equal(ref.Kind, row.SourceKind)
		s.Equal(ref.ID, row.SourceID)
		s.Equal(s.actorID, row.CreatedBy)
		s.Require().NotNil(row.ProjectID)
		s.Equal(s.projectID, *row.ProjectID)
	}

	s.Equal(domain.ActionSubmit, postedAudit.Action)
	s.Equal(ref.ID, postedAudit.EntityID)
	s.Equal([]string{"DRAFT", "SUBMITTED"}, postedAudit.Changes["status"])

	s.mockDocumentRepo.AssertExpectations(s.T())
	s.mockLedgerRepo.AssertExpectations(s.T())
	s.mockAccounts.AssertExpectations(s.T())
	s.mockInvalidator.AssertExpectations(s.T())
}

func (s *SubmissionServiceTestSuite) TestSubmitAlreadySubmitted() {
	ctx := context.Background()
	invoice := s.draftSalesInvoice()
	invoice.Status = domain.Submitted
	ref := invoice.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(invoice, nil).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrAlreadyPosted)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "PostDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmitCancelledDocument() {
	ctx := context.Background()
	invoice := s.draftSalesInvoice()
	invoice.Status = domain.Cancelled
	ref := invoice.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(invoice, nil).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDocumentNotDraft)
}

func (s *SubmissionServiceTestSuite) TestSubmitWithExistingLedgerRows() {
	ctx := context.Background()
	invoice := s.draftSalesInvoice()
	ref := invoice.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(invoice, nil).Once()
	s.mockLedgerRepo.On("CountRowsForSource", ctx, ref).Return(2, nil).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrAlreadyPosted)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "PostDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmitMissingControlAccount() {
	ctx := context.Background()
	invoice := s.draftSalesInvoice()
	invoice.CurrencyCode = "RMB"
	ref := invoice.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(invoice, nil).Once()
	s.mockLedgerRepo.On("CountRowsForSource", ctx, ref).Return(0, nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeReceivable, "RMB").Return(nil, apperrors.ErrMissingAccount).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrMissingAccount)
	s.Equal(domain.Draft, invoice.Status, "document must stay Draft on failure")
	s.mockLedgerRepo.AssertNotCalled(s.T(), "PostDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmitJournalWithOnlyZeroLines() {
	ctx := context.Background()
	entry := &domain.JournalEntry{
		DocumentCore: domain.DocumentCore{
			DocumentID: uuid.NewString(),
			Status:     domain.Draft,
		},
		EntryDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{AccountCode: "BANK_INR", CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1)},
			{AccountCode: "CASH_INR", CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1)},
		},
	}
	ref := entry.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(entry, nil).Once()
	s.mockLedgerRepo.On("CountRowsForSource", ctx, ref).Return(0, nil).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrEmptyJournal)
}

func (s *SubmissionServiceTestSuite) TestSubmitImbalancedJournal() {
	ctx := context.Background()
	entry := &domain.JournalEntry{
		DocumentCore: domain.DocumentCore{
			DocumentID: uuid.NewString(),
			Status:     domain.Draft,
		},
		EntryDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Lines: []domain.JournalLine{
			{AccountCode: "BANK_USD", CurrencyCode: "USD", ExchangeRate: decimal.RequireFromString("83.50"), DebitForeign: decimal.NewFromInt(100)},
			{AccountCode: "BANK_INR", CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1), CreditForeign: decimal.NewFromInt(100)},
		},
	}
	ref := entry.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(entry, nil).Once()
	s.mockLedgerRepo.On("CountRowsForSource", ctx, ref).Return(0, nil).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrImbalancedPosting)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "PostDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmitDocumentNotFound() {
	ctx := context.Background()
	ref := domain.DocumentRef{Kind: domain.KindSalesInvoice, ID: uuid.NewString()}

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SubmissionServiceTestSuite) TestSubmitConcurrentLoserSeesAlreadyPosted() {
	// The repository surfaces the unique-index violation as ErrAlreadyPosted
	// when a concurrent submission won the race after our precheck.
	ctx := context.Background()
	invoice := s.draftSalesInvoice()
	ref := invoice.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(invoice, nil).Once()
	s.mockLedgerRepo.On("CountRowsForSource", ctx, ref).Return(0, nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeReceivable, "USD").Return(s.account("AR_USD", domain.Asset), nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeFreightIncome, "").Return(s.account("FREIGHT_INCOME", domain.Income), nil).Once()
	s.mockLedgerRepo.On("PostDocument", ctx, invoice, mock.AnythingOfType("[]domain.LedgerRow"), mock.AnythingOfType("domain.AuditEntry")).
		Return(apperrors.ErrAlreadyPosted).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrAlreadyPosted)
	s.mockInvalidator.AssertNotCalled(s.T(), "InvalidateProjectProfit", mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmitPostFailureLeavesDocumentDraft() {
	ctx := context.Background()
	invoice := s.draftSalesInvoice()
	ref := invoice.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(invoice, nil).Once()
	s.mockLedgerRepo.On("CountRowsForSource", ctx, ref).Return(0, nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeReceivable, "USD").Return(s.account("AR_USD", domain.Asset), nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeFreightIncome, "").Return(s.account("FREIGHT_INCOME", domain.Income), nil).Once()
	s.mockLedgerRepo.On("PostDocument", ctx, invoice, mock.AnythingOfType("[]domain.LedgerRow"), mock.AnythingOfType("domain.AuditEntry")).
		Return(errors.New("connection reset by peer")).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().Error(err)
	s.Equal(domain.Draft, invoice.Status, "in-memory document must not be stamped before the commit")
	s.Nil(invoice.SubmittedBy)
	s.Nil(invoice.SubmittedAt)
	s.mockInvalidator.AssertNotCalled(s.T(), "InvalidateProjectProfit", mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmitWithoutProjectSkipsInvalidation() {
	ctx := context.Background()
	invoice := s.draftSalesInvoice()
	invoice.ProjectID = nil
	ref := invoice.Ref()

	s.mockDocumentRepo.On("FindDocument", ctx, ref).Return(invoice, nil).Once()
	s.mockLedgerRepo.On("CountRowsForSource", ctx, ref).Return(0, nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeReceivable, "USD").Return(s.account("AR_USD", domain.Asset), nil).Once()
	s.mockAccounts.On("PurposeAccount", ctx, domain.PurposeFreightIncome, "").Return(s.account("FREIGHT_INCOME", domain.Income), nil).Once()
	s.mockLedgerRepo.On("PostDocument", ctx, invoice, mock.AnythingOfType("[]domain.LedgerRow"), mock.AnythingOfType("domain.AuditEntry")).Return(nil).Once()

	_, err := s.service.SubmitDocument(ctx, ref, s.actorID)

	s.Require().NoError(err)
	s.mockInvalidator.AssertNotCalled(s.T(), "InvalidateProjectProfit", mock.Anything, mock.Anything)
}

func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}

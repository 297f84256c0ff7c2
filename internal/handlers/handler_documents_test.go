package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portssvc "github.com/freightops/erpshipping/internal/core/ports/services"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/freightops/erpshipping/internal/handlers"
	"github.com/freightops/erpshipping/internal/middleware"
	"github.com/freightops/erpshipping/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateSalesInvoice(ctx context.Context, req dto.CreateSalesInvoiceRequest, creatorUserID string) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesInvoice), args.Error(1)
}
func (m *MockDocumentService) CreatePurchaseInvoice(ctx context.Context, req dto.CreatePurchaseInvoiceRequest, creatorUserID string) (*domain.PurchaseInvoice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseInvoice), args.Error(1)
}
func (m *MockDocumentService) CreatePaymentEntry(ctx context.Context, req dto.CreatePaymentEntryRequest, creatorUserID string) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}
func (m *MockDocumentService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockDocumentService) UpdateSalesInvoice(ctx context.Context, documentID string, req dto.UpdateSalesInvoiceRequest, userID string) (*domain.SalesInvoice, error) {
	args := m.Called(ctx, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesInvoice), args.Error(1)
}
func (m *MockDocumentService) UpdatePurchaseInvoice(ctx context.Context, documentID string, req dto.UpdatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error) {
	args := m.Called(ctx, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseInvoice), args.Error(1)
}
func (m *MockDocumentService) UpdatePaymentEntry(ctx context.Context, documentID string, req dto.UpdatePaymentEntryRequest, userID string) (*domain.PaymentEntry, error) {
	args := m.Called(ctx, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentEntry), args.Error(1)
}
func (m *MockDocumentService) UpdateJournalEntry(ctx context.Context, documentID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockDocumentService) GetDocument(ctx context.Context, ref domain.DocumentRef) (domain.Document, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}
func (m *MockDocumentService) ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	args := m.Called(ctx, kind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDocumentsResponse), args.Error(1)
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Mock SubmissionService ---
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitDocument(ctx context.Context, ref domain.DocumentRef, actorUserID string) (domain.Document, error) {
	args := m.Called(ctx, ref, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Document), args.Error(1)
}

var _ portssvc.SubmissionSvcFacade = (*MockSubmissionService)(nil)

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockDocumentService   *MockDocumentService
	mockSubmissionService *MockSubmissionService
	jwtSecret             string
}

// generateTestToken creates a JWT carrying the given role for testing.
func (suite *DocumentHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "test-issuer")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDocumentService = new(MockDocumentService)
	suite.mockSubmissionService = new(MockSubmissionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDocumentRoutes(v1, suite.mockDocumentService, suite.mockSubmissionService)
}

func (suite *DocumentHandlerTestSuite) doRequest(method, url string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DocumentHandlerTestSuite) TestSubmitSalesInvoice_Success() {
	reviewerID := uuid.NewString()
	documentID := uuid.NewString()
	ref := domain.DocumentRef{Kind: domain.KindSalesInvoice, ID: documentID}

	now := time.Now()
	submitted := &domain.SalesInvoice{
		DocumentCore: domain.DocumentCore{
			DocumentID:  documentID,
			Status:      domain.Submitted,
			SubmittedBy: &reviewerID,
			SubmittedAt: &now,
		},
		CustomerID:   uuid.NewString(),
		InvoiceDate:  now,
		DueDate:      now.AddDate(0, 1, 0),
		CurrencyCode: "USD",
		ExchangeRate: decimal.RequireFromString("83.50"),
		TotalAmount:  decimal.NewFromInt(1000),
	}

	suite.mockSubmissionService.On("SubmitDocument", mock.Anything, ref, reviewerID).
		Return(submitted, nil).Once()

	token := suite.generateTestToken(reviewerID, domain.RoleReviewer)
	w := suite.doRequest(http.MethodPost, "/api/v1/sales-invoices/"+documentID+"/submit", nil, token)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("SUBMITTED", resp.Status)
	suite.Equal(documentID, resp.DocumentID)
	suite.Require().NotNil(resp.SalesInvoice)
	suite.True(resp.SalesInvoice.TotalAmount.Equal(decimal.NewFromInt(1000)))
	suite.mockSubmissionService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_AlreadyPosted() {
	reviewerID := uuid.NewString()
	documentID := uuid.NewString()
	ref := domain.DocumentRef{Kind: domain.KindJournalEntry, ID: documentID}

	suite.mockSubmissionService.On("SubmitDocument", mock.Anything, ref, reviewerID).
		Return(nil, apperrors.ErrAlreadyPosted).Once()

	token := suite.generateTestToken(reviewerID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodPost, "/api/v1/journal-entries/"+documentID+"/submit", nil, token)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockSubmissionService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_CreatorForbidden() {
	creatorID := uuid.NewString()
	documentID := uuid.NewString()

	token := suite.generateTestToken(creatorID, domain.RoleCreator)
	w := suite.doRequest(http.MethodPost, "/api/v1/sales-invoices/"+documentID+"/submit", nil, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockSubmissionService.AssertNotCalled(suite.T(), "SubmitDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_ImbalancedJournal() {
	reviewerID := uuid.NewString()
	documentID := uuid.NewString()
	ref := domain.DocumentRef{Kind: domain.KindJournalEntry, ID: documentID}

	suite.mockSubmissionService.On("SubmitDocument", mock.Anything, ref, reviewerID).
		Return(nil, apperrors.ErrImbalancedPosting).Once()

	token := suite.generateTestToken(reviewerID, domain.RoleReviewer)
	w := suite.doRequest(http.MethodPost, "/api/v1/journal-entries/"+documentID+"/submit", nil, token)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockSubmissionService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestCreateSalesInvoice_Success() {
	creatorID := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	reqBody := dto.CreateSalesInvoiceRequest{
		CustomerID:   uuid.NewString(),
		InvoiceDate:  now,
		DueDate:      now.AddDate(0, 1, 0),
		CurrencyCode: "USD",
		ExchangeRate: decimal.RequireFromString("83.50"),
		TotalAmount:  decimal.NewFromInt(1000),
		Notes:        "freight charges Q3",
	}

	created := &domain.SalesInvoice{
		DocumentCore: domain.DocumentCore{
			DocumentID: uuid.NewString(),
			Status:     domain.Draft,
			Notes:      reqBody.Notes,
		},
		CustomerID:   reqBody.CustomerID,
		InvoiceDate:  reqBody.InvoiceDate,
		DueDate:      reqBody.DueDate,
		CurrencyCode: reqBody.CurrencyCode,
		ExchangeRate: reqBody.ExchangeRate,
		TotalAmount:  reqBody.TotalAmount,
	}

	suite.mockDocumentService.On("CreateSalesInvoice", mock.Anything, mock.MatchedBy(func(r dto.CreateSalesInvoiceRequest) bool {
		return r.CustomerID == reqBody.CustomerID && r.TotalAmount.Equal(reqBody.TotalAmount)
	}), creatorID).Return(created, nil).Once()

	token := suite.generateTestToken(creatorID, domain.RoleCreator)
	w := suite.doRequest(http.MethodPost, "/api/v1/sales-invoices", reqBody, token)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("DRAFT", resp.Status)
	suite.Equal("SALES_INVOICE", resp.Kind)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestCreateSalesInvoice_ViewerForbidden() {
	viewerID := uuid.NewString()

	token := suite.generateTestToken(viewerID, domain.RoleViewer)
	w := suite.doRequest(http.MethodPost, "/api/v1/sales-invoices", dto.CreateSalesInvoiceRequest{}, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockDocumentService.AssertNotCalled(suite.T(), "CreateSalesInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_NotFound() {
	userID := uuid.NewString()
	documentID := uuid.NewString()
	ref := domain.DocumentRef{Kind: domain.KindPurchaseInvoice, ID: documentID}

	suite.mockDocumentService.On("GetDocument", mock.Anything, ref).
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(userID, domain.RoleViewer)
	w := suite.doRequest(http.MethodGet, "/api/v1/purchase-invoices/"+documentID, nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestListDocuments_PassesPaginationParams() {
	userID := uuid.NewString()
	nextToken := "abc123"

	suite.mockDocumentService.On("ListDocuments", mock.Anything, domain.KindPaymentEntry, mock.MatchedBy(func(p dto.ListDocumentsParams) bool {
		return p.Limit == 5 && p.NextToken != nil && *p.NextToken == nextToken
	})).Return(&dto.ListDocumentsResponse{Documents: []dto.DocumentResponse{}}, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleViewer)
	w := suite.doRequest(http.MethodGet, "/api/v1/payment-entries?limit=5&nextToken="+nextToken, nil, token)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDocumentService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_NoToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sales-invoices/"+uuid.NewString()+"/submit", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestDocumentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portssvc "github.com/freightops/erpshipping/internal/core/ports/services"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/freightops/erpshipping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for draft documents and submission.
type documentHandler struct {
	documentService   portssvc.DocumentSvcFacade
	submissionService portssvc.SubmissionSvcFacade
}

// RegisterDocumentRoutes registers the per-variant document routes. Drafting
// requires an editing role; submission is restricted to reviewers and admins.
func RegisterDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, submissionService portssvc.SubmissionSvcFacade) {
	h := &documentHandler{
		documentService:   documentService,
		submissionService: submissionService,
	}

	canEdit := middleware.RequireRole(domain.UserRole.CanEdit)
	canSubmit := middleware.RequireRole(domain.UserRole.CanSubmit)

	variants := []struct {
		path   string
		kind   domain.DocumentKind
		create gin.HandlerFunc
		update gin.HandlerFunc
	}{
		{"/sales-invoices", domain.KindSalesInvoice, h.createSalesInvoice, h.updateSalesInvoice},
		{"/purchase-invoices", domain.KindPurchaseInvoice, h.createPurchaseInvoice, h.updatePurchaseInvoice},
		{"/payment-entries", domain.KindPaymentEntry, h.createPaymentEntry, h.updatePaymentEntry},
		{"/journal-entries", domain.KindJournalEntry, h.createJournalEntry, h.updateJournalEntry},
	}

	for _, v := range variants {
		kind := v.kind
		group := rg.Group(v.path)
		group.POST("", canEdit, v.create)
		group.PUT("/:id", canEdit, v.update)
		group.GET("/:id", h.getDocument(kind))
		group.GET("", h.listDocuments(kind))
		group.POST("/:id/submit", canSubmit, h.submitDocument(kind))
	}
}

// respondDocumentError translates service errors into HTTP responses. The
// posting failures (missing account, empty journal, imbalance) come back as
// 422 since the payload was well-formed but cannot be posted.
func respondDocumentError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Document not found", slog.String("action", action))
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyPosted):
		logger.Warn("Document already posted", slog.String("action", action))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDocumentNotDraft):
		logger.Warn("Document is not in draft", slog.String("action", action))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrMissingAccount),
		errors.Is(err, apperrors.ErrEmptyJournal),
		errors.Is(err, apperrors.ErrImbalancedPosting):
		logger.Warn("Document cannot be posted", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error("Document operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createSalesInvoice godoc
// @Summary Draft a sales invoice
// @Description Creates a sales invoice in Draft status
// @Tags documents
// @Accept json
// @Produce json
// @Param invoice body dto.CreateSalesInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create sales invoice"
// @Security BearerAuth
// @Router /sales-invoices [post]
func (h *documentHandler) createSalesInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSalesInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSalesInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.documentService.CreateSalesInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondDocumentError(c, logger, err, "create sales invoice")
		return
	}

	logger.Info("Sales invoice drafted", slog.String("document_id", invoice.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(invoice))
}

// updateSalesInvoice godoc
// @Summary Update a draft sales invoice
// @Description Applies partial updates to a sales invoice still in Draft
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param invoice body dto.UpdateSalesInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is no longer a draft"
// @Security BearerAuth
// @Router /sales-invoices/{id} [put]
func (h *documentHandler) updateSalesInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSalesInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSalesInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.documentService.UpdateSalesInvoice(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "update sales invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(invoice))
}

// createPurchaseInvoice godoc
// @Summary Draft a purchase invoice
// @Description Creates a purchase invoice in Draft status
// @Tags documents
// @Accept json
// @Produce json
// @Param invoice body dto.CreatePurchaseInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /purchase-invoices [post]
func (h *documentHandler) createPurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.documentService.CreatePurchaseInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondDocumentError(c, logger, err, "create purchase invoice")
		return
	}

	logger.Info("Purchase invoice drafted", slog.String("document_id", invoice.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(invoice))
}

// updatePurchaseInvoice godoc
// @Summary Update a draft purchase invoice
// @Description Applies partial updates to a purchase invoice still in Draft
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param invoice body dto.UpdatePurchaseInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is no longer a draft"
// @Security BearerAuth
// @Router /purchase-invoices/{id} [put]
func (h *documentHandler) updatePurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePurchaseInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.documentService.UpdatePurchaseInvoice(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "update purchase invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(invoice))
}

// createPaymentEntry godoc
// @Summary Draft a payment entry
// @Description Creates a payment entry in Draft status
// @Tags documents
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentEntryRequest true "Payment details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payment-entries [post]
func (h *documentHandler) createPaymentEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.documentService.CreatePaymentEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondDocumentError(c, logger, err, "create payment entry")
		return
	}

	logger.Info("Payment entry drafted", slog.String("document_id", payment.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(payment))
}

// updatePaymentEntry godoc
// @Summary Update a draft payment entry
// @Description Applies partial updates to a payment entry still in Draft
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param payment body dto.UpdatePaymentEntryRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is no longer a draft"
// @Security BearerAuth
// @Router /payment-entries/{id} [put]
func (h *documentHandler) updatePaymentEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePaymentEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePaymentEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.documentService.UpdatePaymentEntry(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "update payment entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(payment))
}

// createJournalEntry godoc
// @Summary Draft a journal entry
// @Description Creates a free-form journal entry in Draft status
// @Tags documents
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalEntryRequest true "Journal details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *documentHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.documentService.CreateJournalEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondDocumentError(c, logger, err, "create journal entry")
		return
	}

	logger.Info("Journal entry drafted", slog.String("document_id", journal.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(journal))
}

// updateJournalEntry godoc
// @Summary Update a draft journal entry
// @Description Applies partial updates to a journal entry still in Draft. Lines, when present, replace the draft's lines wholesale.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param journal body dto.UpdateJournalEntryRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is no longer a draft"
// @Security BearerAuth
// @Router /journal-entries/{id} [put]
func (h *documentHandler) updateJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.documentService.UpdateJournalEntry(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondDocumentError(c, logger, err, "update journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(journal))
}

// getDocument returns a handler fetching one document of the given kind.
func (h *documentHandler) getDocument(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		ref := domain.DocumentRef{Kind: kind, ID: c.Param("id")}

		doc, err := h.documentService.GetDocument(c.Request.Context(), ref)
		if err != nil {
			respondDocumentError(c, logger, err, "retrieve document")
			return
		}

		c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
	}
}

// listDocuments returns a handler listing documents of the given kind with
// token-based pagination, newest first.
func (h *documentHandler) listDocuments(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		var params dto.ListDocumentsParams
		if err := c.ShouldBindQuery(&params); err != nil {
			logger.Warn("Failed to bind query params for ListDocuments", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
			return
		}

		resp, err := h.documentService.ListDocuments(c.Request.Context(), kind, params)
		if err != nil {
			respondDocumentError(c, logger, err, "list documents")
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// submitDocument returns a handler posting one document of the given kind to
// the general ledger.
func (h *documentHandler) submitDocument(kind domain.DocumentKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		ref := domain.DocumentRef{Kind: kind, ID: c.Param("id")}

		actorUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("document_id", ref.ID), slog.String("document_kind", string(kind)))
		logger.Info("Received request to submit document")

		doc, err := h.submissionService.SubmitDocument(c.Request.Context(), ref, actorUserID)
		if err != nil {
			respondDocumentError(c, logger, err, "submit document")
			return
		}

		logger.Info("Document submitted successfully")
		c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
	}
}

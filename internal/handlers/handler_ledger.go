package handlers

import (
	"log/slog"
	"net/http"

	"github.com/freightops/erpshipping/internal/core/domain"
	portssvc "github.com/freightops/erpshipping/internal/core/ports/services"
	"github.com/freightops/erpshipping/internal/dto"
	"github.com/freightops/erpshipping/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles read-only queries over the general ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerLedgerRoutes registers the ledger query routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &ledgerHandler{ledgerService: ledgerService}

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/rows", h.listLedgerRows)
	}
}

// listLedgerRows godoc
// @Summary List ledger rows
// @Description Retrieves posted ledger rows matching the filters, in insertion order, with token-based pagination
// @Tags ledger
// @Produce json
// @Param projectID query string false "Filter by project"
// @Param accountCode query string false "Filter by account"
// @Param dateFrom query string false "Transaction date lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Transaction date upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListLedgerRowsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list ledger rows"
// @Security BearerAuth
// @Router /ledger/rows [get]
func (h *ledgerHandler) listLedgerRows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.LedgerQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListLedgerRows", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.LedgerFilter{
		ProjectID:   params.ProjectID,
		AccountCode: params.AccountCode,
		DateFrom:    params.DateFrom,
		DateTo:      params.DateTo,
	}

	rows, nextToken, err := h.ledgerService.ListLedgerRows(c.Request.Context(), filter, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list ledger rows from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger rows"})
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgerRowsResponse{
		Rows:      dto.ToLedgerRowResponses(rows),
		NextToken: nextToken,
	})
}

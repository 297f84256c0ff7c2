package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
)

// ReportingSvcFacade derives profitability figures from the ledger.
type ReportingSvcFacade interface {
	// GetProjectProfit computes the project's revenue, expenses and net
	// profit from its ledger rows.
	GetProjectProfit(ctx context.Context, projectID string) (*domain.ProjectProfit, error)
}

// ProfitInvalidator drops any cached profitability figure for a project.
// The submission flow calls it after every posting that tags the project.
type ProfitInvalidator interface {
	InvalidateProjectProfit(ctx context.Context, projectID string)
}

package dto

import (
	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectProfitResponse is the profitability aggregate for one project.
type ProjectProfitResponse struct {
	ProjectID string          `json:"projectID"`
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"netProfit"`
}

// ToProjectProfitResponse converts a domain.ProjectProfit to its DTO.
func ToProjectProfitResponse(p *domain.ProjectProfit) ProjectProfitResponse {
	return ProjectProfitResponse{
		ProjectID: p.ProjectID,
		Revenue:   p.Revenue,
		Expenses:  p.Expenses,
		NetProfit: p.NetProfit,
	}
}

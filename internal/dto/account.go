package dto

import (
	"github.com/freightops/erpshipping/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating a chart-of-accounts entry.
type CreateAccountRequest struct {
	AccountCode  string  `json:"accountCode" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	AccountType  string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentCode   *string `json:"parentCode"`
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,len=3"`
	Purpose      string  `json:"purpose" binding:"omitempty,oneof=RECEIVABLE PAYABLE FREIGHT_INCOME FREIGHT_CHARGES"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountCode  string  `json:"accountCode"`
	Name         string  `json:"name"`
	AccountType  string  `json:"accountType"`
	ParentCode   *string `json:"parentCode,omitempty"`
	CurrencyCode *string `json:"currencyCode,omitempty"`
	Purpose      string  `json:"purpose,omitempty"`
	IsActive     bool    `json:"isActive"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountCode:  a.AccountCode,
		Name:         a.Name,
		AccountType:  string(a.AccountType),
		ParentCode:   a.ParentCode,
		CurrencyCode: a.CurrencyCode,
		Purpose:      string(a.Purpose),
		IsActive:     a.IsActive,
	}
}

// ToAccountResponses converts a slice of domain.Account to []AccountResponse.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

package services

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
	"github.com/freightops/erpshipping/internal/dto"
)

// CustomerSvcFacade manages customer master data.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// AgentSvcFacade manages agent master data.
type AgentSvcFacade interface {
	CreateAgent(ctx context.Context, req dto.CreateAgentRequest, creatorUserID string) (*domain.Agent, error)
	GetAgentByID(ctx context.Context, agentID string) (*domain.Agent, error)
	ListAgents(ctx context.Context) ([]domain.Agent, error)
}

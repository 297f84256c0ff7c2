package repositories

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
)

// CustomerRepositoryFacade defines operations for customer master data
type CustomerRepositoryFacade interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// AgentRepositoryFacade defines operations for agent master data
type AgentRepositoryFacade interface {
	SaveAgent(ctx context.Context, agent domain.Agent) error
	FindAgentByID(ctx context.Context, agentID string) (*domain.Agent, error)
	ListAgents(ctx context.Context) ([]domain.Agent, error)
}

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
)

// CustomerService manages customer master data.
type CustomerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) *CustomerService {
	return &CustomerService{customerRepo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		SMark:      req.SMark,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		}
		return nil, err
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		logger.Error("Failed to list customers from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// AgentService manages agent master data.
type AgentService struct {
	agentRepo portsrepo.AgentRepositoryFacade
}

func NewAgentService(repo portsrepo.AgentRepositoryFacade) *AgentService {
	return &AgentService{agentRepo: repo}
}

func (s *AgentService) CreateAgent(ctx context.Context, req dto.CreateAgentRequest, creatorUserID string) (*domain.Agent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	agent := domain.Agent{
		AgentID:     uuid.NewString(),
		Name:        req.Name,
		BankDetails: req.BankDetails,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.agentRepo.SaveAgent(ctx, agent); err != nil {
		logger.Error("Failed to save agent in repository", slog.String("error", err.Error()), slog.String("agent_id", agent.AgentID))
		return nil, err
	}

	logger.Info("Agent created", slog.String("agent_id", agent.AgentID))
	return &agent, nil
}

func (s *AgentService) GetAgentByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	agent, err := s.agentRepo.FindAgentByID(ctx, agentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find agent in repository", slog.String("error", err.Error()), slog.String("agent_id", agentID))
		}
		return nil, err
	}
	return agent, nil
}

func (s *AgentService) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	agents, err := s.agentRepo.ListAgents(ctx)
	if err != nil {
		logger.Error("Failed to list agents from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	if agents == nil {
		return []domain.Agent{}, nil
	}
	return agents, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/models"
	"github.com/freightops/erpshipping/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer master data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	modelCust := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (customer_id, name, s_mark, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCust.CustomerID,
		modelCust.Name,
		modelCust.SMark,
		modelCust.CreatedAt,
		modelCust.CreatedBy,
		modelCust.LastUpdatedAt,
		modelCust.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on s_mark
			return fmt.Errorf("%w: shipping mark %s", apperrors.ErrDuplicate, modelCust.SMark)
		}
		return fmt.Errorf("failed to save customer %s: %w", modelCust.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, s_mark, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE customer_id = $1;
	`
	var modelCust models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(
		&modelCust.CustomerID,
		&modelCust.Name,
		&modelCust.SMark,
		&modelCust.CreatedAt,
		&modelCust.CreatedBy,
		&modelCust.LastUpdatedAt,
		&modelCust.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}

	domainCust := mapping.ToDomainCustomer(modelCust)
	return &domainCust, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, s_mark, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	modelCustomers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Customer, error) {
		var customer models.Customer
		err := row.Scan(
			&customer.CustomerID,
			&customer.Name,
			&customer.SMark,
			&customer.CreatedAt,
			&customer.CreatedBy,
			&customer.LastUpdatedAt,
			&customer.LastUpdatedBy,
		)
		return customer, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}

	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}

type PgxAgentRepository struct {
	BaseRepository
}

// newPgxAgentRepository creates a new repository for agent master data.
func newPgxAgentRepository(pool *pgxpool.Pool) portsrepo.AgentRepositoryFacade {
	return &PgxAgentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AgentRepositoryFacade = (*PgxAgentRepository)(nil)

func (r *PgxAgentRepository) SaveAgent(ctx context.Context, agent domain.Agent) error {
	modelAgent := mapping.ToModelAgent(agent)

	query := `
		INSERT INTO agents (agent_id, name, bank_details, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAgent.AgentID,
		modelAgent.Name,
		modelAgent.BankDetails,
		modelAgent.CreatedAt,
		modelAgent.CreatedBy,
		modelAgent.LastUpdatedAt,
		modelAgent.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save agent %s: %w", modelAgent.AgentID, err)
	}
	return nil
}

func (r *PgxAgentRepository) FindAgentByID(ctx context.Context, agentID string) (*domain.Agent, error) {
	query := `
		SELECT agent_id, name, bank_details, created_at, created_by, last_updated_at, last_updated_by
		FROM agents
		WHERE agent_id = $1;
	`
	var modelAgent models.Agent
	err := r.Pool.QueryRow(ctx, query, agentID).Scan(
		&modelAgent.AgentID,
		&modelAgent.Name,
		&modelAgent.BankDetails,
		&modelAgent.CreatedAt,
		&modelAgent.CreatedBy,
		&modelAgent.LastUpdatedAt,
		&modelAgent.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find agent %s: %w", agentID, err)
	}

	domainAgent := mapping.ToDomainAgent(modelAgent)
	return &domainAgent, nil
}

func (r *PgxAgentRepository) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	query := `
		SELECT agent_id, name, bank_details, created_at, created_by, last_updated_at, last_updated_by
		FROM agents
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}
	defer rows.Close()

	modelAgents, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Agent, error) {
		var agent models.Agent
		err := row.Scan(
			&agent.AgentID,
			&agent.Name,
			&agent.BankDetails,
			&agent.CreatedAt,
			&agent.CreatedBy,
			&agent.LastUpdatedAt,
			&agent.LastUpdatedBy,
		)
		return agent, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan agents: %w", err)
	}

	return mapping.ToDomainAgentSlice(modelAgents), nil
}

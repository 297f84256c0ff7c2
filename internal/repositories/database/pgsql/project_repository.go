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

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project (container) data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	modelProj := mapping.ToModelProject(project)

	query := `
		INSERT INTO projects (project_id, container_number, customer_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelProj.ProjectID,
		modelProj.ContainerNumber,
		modelProj.CustomerID,
		modelProj.IsActive,
		modelProj.CreatedAt,
		modelProj.CreatedBy,
		modelProj.LastUpdatedAt,
		modelProj.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on container_number
			return fmt.Errorf("%w: container %s", apperrors.ErrDuplicate, modelProj.ContainerNumber)
		}
		return fmt.Errorf("failed to save project %s: %w", modelProj.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, container_number, customer_id, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM projects
		WHERE project_id = $1;
	`
	var modelProj models.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&modelProj.ProjectID,
		&modelProj.ContainerNumber,
		&modelProj.CustomerID,
		&modelProj.IsActive,
		&modelProj.CreatedAt,
		&modelProj.CreatedBy,
		&modelProj.LastUpdatedAt,
		&modelProj.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	domainProj := mapping.ToDomainProject(modelProj)
	return &domainProj, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	query := `
		SELECT project_id, container_number, customer_id, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM projects
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY container_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Project, error) {
		var project models.Project
		err := row.Scan(
			&project.ProjectID,
			&project.ContainerNumber,
			&project.CustomerID,
			&project.IsActive,
			&project.CreatedAt,
			&project.CreatedBy,
			&project.LastUpdatedAt,
			&project.LastUpdatedBy,
		)
		return project, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}

	return mapping.ToDomainProjectSlice(modelProjects), nil
}

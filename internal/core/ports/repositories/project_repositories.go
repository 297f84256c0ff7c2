package repositories

import (
	"context"

	"github.com/freightops/erpshipping/internal/core/domain"
)

// ProjectRepositoryFacade defines operations for project (container) master data
type ProjectRepositoryFacade interface {
	// SaveProject inserts a new project. Container numbers are unique.
	SaveProject(ctx context.Context, project domain.Project) error

	// FindProjectByID retrieves a project by its identifier.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves projects, optionally restricted to active ones.
	ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error)
}

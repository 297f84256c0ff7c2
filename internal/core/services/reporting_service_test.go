package services_test

import (
	"context"
	"testing"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetProjectProfitData(ctx context.Context, projectID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func TestGetProjectProfit(t *testing.T) {
	ctx := context.Background()
	reportingRepo := new(MockReportingRepository)
	projectRepo := new(MockProjectRepository)
	svc := services.NewReportingService(reportingRepo, projectRepo, nil)

	projectID := uuid.NewString()
	projectRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{ProjectID: projectID, IsActive: true}, nil).Once()
	reportingRepo.On("GetProjectProfitData", ctx, projectID).
		Return(decimal.RequireFromString("83500.00"), decimal.RequireFromString("41000.00"), nil).Once()

	profit, err := svc.GetProjectProfit(ctx, projectID)

	require.NoError(t, err)
	require.NotNil(t, profit)
	assert.Equal(t, projectID, profit.ProjectID)
	assert.True(t, profit.Revenue.Equal(decimal.RequireFromString("83500.00")))
	assert.True(t, profit.Expenses.Equal(decimal.RequireFromString("41000.00")))
	assert.True(t, profit.NetProfit.Equal(decimal.RequireFromString("42500.00")))
	reportingRepo.AssertExpectations(t)
	projectRepo.AssertExpectations(t)
}

func TestGetProjectProfit_NoLedgerActivity(t *testing.T) {
	ctx := context.Background()
	reportingRepo := new(MockReportingRepository)
	projectRepo := new(MockProjectRepository)
	svc := services.NewReportingService(reportingRepo, projectRepo, nil)

	projectID := uuid.NewString()
	projectRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{ProjectID: projectID, IsActive: true}, nil).Once()
	reportingRepo.On("GetProjectProfitData", ctx, projectID).
		Return(decimal.Zero, decimal.Zero, nil).Once()

	profit, err := svc.GetProjectProfit(ctx, projectID)

	require.NoError(t, err)
	assert.True(t, profit.Revenue.IsZero())
	assert.True(t, profit.Expenses.IsZero())
	assert.True(t, profit.NetProfit.IsZero())
}

func TestGetProjectProfit_NegativeNetProfit(t *testing.T) {
	ctx := context.Background()
	reportingRepo := new(MockReportingRepository)
	projectRepo := new(MockProjectRepository)
	svc := services.NewReportingService(reportingRepo, projectRepo, nil)

	projectID := uuid.NewString()
	projectRepo.On("FindProjectByID", ctx, projectID).Return(&domain.Project{ProjectID: projectID, IsActive: true}, nil).Once()
	reportingRepo.On("GetProjectProfitData", ctx, projectID).
		Return(decimal.RequireFromString("1000.00"), decimal.RequireFromString("2500.00"), nil).Once()

	profit, err := svc.GetProjectProfit(ctx, projectID)

	require.NoError(t, err)
	assert.True(t, profit.NetProfit.Equal(decimal.RequireFromString("-1500.00")))
}

func TestGetProjectProfit_UnknownProject(t *testing.T) {
	ctx := context.Background()
	reportingRepo := new(MockReportingRepository)
	projectRepo := new(MockProjectRepository)
	svc := services.NewReportingService(reportingRepo, projectRepo, nil)

	projectID := uuid.NewString()
	projectRepo.On("FindProjectByID", ctx, projectID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetProjectProfit(ctx, projectID)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	reportingRepo.AssertNotCalled(t, "GetProjectProfitData", mock.Anything, mock.Anything)
}

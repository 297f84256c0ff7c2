package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/freightops/erpshipping/internal/apperrors"
	"github.com/freightops/erpshipping/internal/core/domain"
	portsrepo "github.com/freightops/erpshipping/internal/core/ports/repositories"
	"github.com/freightops/erpshipping/internal/middleware"
	"github.com/go-redis/redis/v8"
)

const profitCacheTTL = 5 * time.Minute

// ReportingService derives profitability figures from ledger rows. When a
// Redis client is configured the per-project figure is cached until the next
// posting tagged with that project invalidates it.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	projectRepo   portsrepo.ProjectRepositoryFacade
	cache         *redis.Client // nil disables caching
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository, projectRepo portsrepo.ProjectRepositoryFacade, cache *redis.Client) *ReportingService {
	return &ReportingService{
		reportingRepo: reportingRepo,
		projectRepo:   projectRepo,
		cache:         cache,
	}
}

func profitCacheKey(projectID string) string {
	return "profit:" + projectID
}

func (s *ReportingService) GetProjectProfit(ctx context.Context, projectID string) (*domain.ProjectProfit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, profitCacheKey(projectID)).Result()
		if err == nil {
			var profit domain.ProjectProfit
			if jsonErr := json.Unmarshal([]byte(cached), &profit); jsonErr == nil {
				return &profit, nil
			}
			// Unreadable entry, fall through and recompute.
		} else if !errors.Is(err, redis.Nil) {
			logger.Warn("Profit cache read failed", slog.String("error", err.Error()), slog.String("project_id", projectID))
		}
	}

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find project for profit report", slog.String("error", err.Error()), slog.String("project_id", projectID))
		}
		return nil, err
	}

	revenue, expenses, err := s.reportingRepo.GetProjectProfitData(ctx, projectID)
	if err != nil {
		logger.Error("Failed to aggregate project profit", slog.String("error", err.Error()), slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to compute project profit: %w", err)
	}

	profit := &domain.ProjectProfit{
		ProjectID: projectID,
		Revenue:   revenue,
		Expenses:  expenses,
		NetProfit: revenue.Sub(expenses),
	}

	if s.cache != nil {
		if payload, jsonErr := json.Marshal(profit); jsonErr == nil {
			if err := s.cache.Set(ctx, profitCacheKey(projectID), payload, profitCacheTTL).Err(); err != nil {
				logger.Warn("Profit cache write failed", slog.String("error", err.Error()), slog.String("project_id", projectID))
			}
		}
	}

	return profit, nil
}

// InvalidateProjectProfit drops the cached figure after a posting touches
// the project. Best effort; a stale entry ages out with the TTL anyway.
func (s *ReportingService) InvalidateProjectProfit(ctx context.Context, projectID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, profitCacheKey(projectID)).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Profit cache invalidation failed", slog.String("error", err.Error()), slog.String("project_id", projectID))
	}
}

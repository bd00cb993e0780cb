package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// cacheTTL keeps hot dashboard reads off the database while staying
	// fresh enough for a reporting UI
	cacheTTL = 30 * time.Second

	// DashboardTrendingSize is how many numbers the dashboard embeds
	DashboardTrendingSize = 10
)

// Service serves trending and dashboard views with a short Redis cache in
// front of the aggregation queries. A missing or failing cache degrades to
// direct reads, never to an error.
type Service struct {
	repo  RepositoryInterface
	cache *redis.Client
}

// NewService creates a new trends service. cache may be nil.
func NewService(repo RepositoryInterface, cache *redis.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

// Trending returns the most-reported numbers, highest count first
func (s *Service) Trending(ctx context.Context, limit int) ([]TrendingEntry, error) {
	key := fmt.Sprintf("trends:trending:%d", limit)

	var cached []TrendingEntry
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	entries, err := s.repo.GroupByNumber(ctx, limit)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to load trending numbers", zap.Error(err))
		return nil, common.NewServiceUnavailableError("report store unavailable", err)
	}

	s.cacheSet(ctx, key, entries)
	return entries, nil
}

// Dashboard returns the aggregate summary over all stored reports
func (s *Service) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	const key = "trends:dashboard"

	var cached DashboardSummary
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to count reports", zap.Error(err))
		return nil, common.NewServiceUnavailableError("report store unavailable", err)
	}

	distribution, err := s.repo.GroupByCategory(ctx)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to load category distribution", zap.Error(err))
		return nil, common.NewServiceUnavailableError("report store unavailable", err)
	}

	trending, err := s.repo.GroupByNumber(ctx, DashboardTrendingSize)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to load trending numbers", zap.Error(err))
		return nil, common.NewServiceUnavailableError("report store unavailable", err)
	}

	summary := &DashboardSummary{
		TotalReports:         total,
		CategoryDistribution: distribution,
		Trending:             trending,
	}

	s.cacheSet(ctx, key, summary)
	return summary, nil
}

func (s *Service) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.WithContext(ctx).Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.WithContext(ctx).Warn("Discarding malformed cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		logger.WithContext(ctx).Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

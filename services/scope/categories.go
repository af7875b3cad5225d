package scope

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	providerRepo "fixitnow/database/repository/provider"
	"fixitnow/models"
	"fixitnow/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CategorySource supplies a provider's declared category set. The
// scoping layer consumes it read-only.
type CategorySource interface {
	Categories(ctx context.Context, providerID string) ([]models.ServiceCategory, error)
}

// CachedCategorySource reads category sets from the provider profile
// store through a short-lived Redis cache. Cache failures degrade to
// direct lookups.
type CachedCategorySource struct {
	Repo  providerRepo.ProviderProfileRepository
	Cache *redis.Client
	TTL   time.Duration
}

// NewCachedCategorySource builds a CategorySource over the profile repo.
func NewCachedCategorySource(repo providerRepo.ProviderProfileRepository, cache *redis.Client) *CachedCategorySource {
	return &CachedCategorySource{Repo: repo, Cache: cache, TTL: 5 * time.Minute}
}

func (s *CachedCategorySource) cacheKey(providerID string) string {
	return utils.ProviderCategoryCache + providerID
}

// Categories returns the declared category set for the provider.
func (s *CachedCategorySource) Categories(ctx context.Context, providerID string) ([]models.ServiceCategory, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, s.cacheKey(providerID)).Result()
		if err == nil {
			var categories []models.ServiceCategory
			if jsonErr := json.Unmarshal([]byte(cached), &categories); jsonErr == nil {
				return categories, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("category cache read failed", zap.Error(err))
		}
	}

	categories, err := s.Repo.GetCategories(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, jsonErr := json.Marshal(categories); jsonErr == nil {
			if err := s.Cache.Set(ctx, s.cacheKey(providerID), data, s.TTL).Err(); err != nil {
				utils.GetLogger().Warn("category cache write failed", zap.Error(err))
			}
		}
	}
	return categories, nil
}

// Invalidate drops the cached category set for the provider. Called
// after a profile update so scoping sees the new set promptly.
func (s *CachedCategorySource) Invalidate(ctx context.Context, providerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, s.cacheKey(providerID)).Err(); err != nil {
		utils.GetLogger().Warn("category cache invalidation failed", zap.Error(err))
	}
}

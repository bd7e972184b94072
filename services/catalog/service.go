package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"homebook/models"
	"homebook/utils"

	"go.uber.org/zap"
)

// ListServices returns all bookable services.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.Repo.GetServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	return services, nil
}

// GetService returns a single service by ID.
func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	service, err := s.Repo.GetServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service %s not found: %w", id, err)
	}
	return service, nil
}

// ListVariants returns the variants of a service, cached per service ID.
func (s *DefaultCatalogService) ListVariants(ctx context.Context, serviceID string) ([]models.ServiceVariant, error) {
	cacheKey := utils.CatalogCachePrefix + "variants:" + serviceID

	if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil {
		var variants []models.ServiceVariant
		if err := json.Unmarshal([]byte(cached), &variants); err == nil {
			return variants, nil
		}
	}

	variants, err := s.Repo.GetVariantsByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch variants for service %s: %w", serviceID, err)
	}

	if data, err := json.Marshal(variants); err == nil {
		if err := s.CacheClient.Set(ctx, cacheKey, data, utils.CatalogCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache variants", zap.String("serviceID", serviceID), zap.Error(err))
		}
	}
	return variants, nil
}

// GetVariant returns a single variant by ID, cached.
func (s *DefaultCatalogService) GetVariant(ctx context.Context, id string) (*models.ServiceVariant, error) {
	cacheKey := utils.CatalogCachePrefix + "variant:" + id

	if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil {
		var variant models.ServiceVariant
		if err := json.Unmarshal([]byte(cached), &variant); err == nil {
			return &variant, nil
		}
	}

	variant, err := s.Repo.GetVariantByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("variant %s not found: %w", id, err)
	}

	if data, err := json.Marshal(variant); err == nil {
		if err := s.CacheClient.Set(ctx, cacheKey, data, utils.CatalogCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache variant", zap.String("variantID", id), zap.Error(err))
		}
	}
	return variant, nil
}

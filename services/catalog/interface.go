package catalog

import (
	"context"

	catalogRepo "homebook/database/repository/catalog"
	"homebook/models"

	"github.com/go-redis/redis/v8"
)

// CatalogService exposes the service catalog to the booking flow. Reads go
// through a Redis cache; the catalog itself changes rarely.
type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListVariants(ctx context.Context, serviceID string) ([]models.ServiceVariant, error)
	GetVariant(ctx context.Context, id string) (*models.ServiceVariant, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo        catalogRepo.CatalogRepository
	CacheClient *redis.Client
}

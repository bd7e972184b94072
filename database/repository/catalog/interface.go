package catalogRepo

import (
	"context"

	"homebook/database"
	"homebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepository interface {
	GetServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	GetVariantsByServiceID(ctx context.Context, serviceID string) ([]models.ServiceVariant, error)
	GetVariantByID(ctx context.Context, id string) (*models.ServiceVariant, error)
}

type mongoCatalogRepo struct {
	services *mongo.Collection
	variants *mongo.Collection
}

// NewMongoCatalogRepo returns a new CatalogRepository instance using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.Database()
	return &mongoCatalogRepo{
		services: db.Collection("services"),
		variants: db.Collection("service_variants"),
	}
}

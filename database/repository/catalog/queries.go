package catalogRepo

import (
	"context"

	"homebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetServices returns all bookable services, sorted by category and title.
func (r *mongoCatalogRepo) GetServices(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "title", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetServiceByID returns a single service by ID.
func (r *mongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		return nil, err
	}
	return &service, nil
}

// GetVariantsByServiceID returns all variants belonging to a service.
func (r *mongoCatalogRepo) GetVariantsByServiceID(ctx context.Context, serviceID string) ([]models.ServiceVariant, error) {
	cursor, err := r.variants.Find(ctx, bson.M{"service_id": serviceID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var variants []models.ServiceVariant
	if err := cursor.All(ctx, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

// GetVariantByID returns a single variant by ID.
func (r *mongoCatalogRepo) GetVariantByID(ctx context.Context, id string) (*models.ServiceVariant, error) {
	var variant models.ServiceVariant
	if err := r.variants.FindOne(ctx, bson.M{"id": id}).Decode(&variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

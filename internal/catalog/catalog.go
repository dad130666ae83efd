package catalog

import (
	"context"
	"fmt"
	"time"

	"material-advisor/internal/telemetry"
	"material-advisor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductCatalog is the live source of sellable products
type ProductCatalog interface {
	ListActiveProducts(ctx context.Context) ([]models.CatalogProduct, error)
}

// MongoCatalog reads active products from a MongoDB collection
type MongoCatalog struct {
	col     *mongo.Collection
	timeout time.Duration
	metrics *telemetry.Metrics
}

func NewMongoCatalog(db *mongo.Database, collection string, metrics *telemetry.Metrics) *MongoCatalog {
	return &MongoCatalog{
		col:     db.Collection(collection),
		timeout: 10 * time.Second,
		metrics: metrics,
	}
}

// ListActiveProducts returns every active product, ordered by category then name
func (mc *MongoCatalog) ListActiveProducts(ctx context.Context) ([]models.CatalogProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, mc.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "category_name", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := mc.col.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		mc.metrics.RecordDatabaseOperation("find", mc.col.Name(), false)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.CatalogProduct
	if err := cursor.All(ctx, &products); err != nil {
		mc.metrics.RecordDatabaseOperation("find", mc.col.Name(), false)
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	mc.metrics.RecordDatabaseOperation("find", mc.col.Name(), true)
	return products, nil
}

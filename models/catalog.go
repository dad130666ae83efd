package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogProduct is a row of the live product catalog
type CatalogProduct struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SKU          string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Unit         string             `bson:"unit" json:"unit"`
	CategoryName string             `bson:"category_name" json:"category_name"`
	Weight       *float64           `bson:"weight,omitempty" json:"weight,omitempty"`     // kg
	Dimensions   string             `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Tags         []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
}

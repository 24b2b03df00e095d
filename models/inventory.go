package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryItem struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ProductName string             `json:"productname" bson:"productname"`
	SKUCode     string             `json:"skucode" bson:"skucode"`
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// InventoryInput is the request body for create/update (no ID, no timestamps)
// InventoryInput carries caller-supplied fields. Price and stock are
// pointers so an explicit 0 is distinguishable from an omitted field.
type InventoryInput struct {
	ProductName string   `json:"productname"`
	SKUCode     string   `json:"skucode"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

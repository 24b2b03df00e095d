package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Worker struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Role      string             `json:"role" bson:"role"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

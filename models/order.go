package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Transitions are not enforced; "Delivered" is terminal
// only by convention in report filters.
const (
	OrderStatusPending    = "pending"
	OrderStatusCutting    = "cutting"
	OrderStatusStitching  = "stitching"
	OrderStatusInProgress = "inprogress"
	OrderStatusReady      = "Ready"
	OrderStatusDelivered  = "Delivered"
)

type WorkerAssignment struct {
	Worker     primitive.ObjectID `json:"worker" bson:"worker"`
	Task       string             `json:"task" bson:"task"`
	Date       time.Time          `json:"date" bson:"date"`
	Commission float64            `json:"commission" bson:"commission"`
}

type Order struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerID       primitive.ObjectID `json:"customerId" bson:"customerId"`
	Item             string             `json:"item,omitempty" bson:"item,omitempty"`
	Status           string             `json:"status" bson:"status"`
	DeliveryDate     time.Time          `json:"deliveryDate,omitempty" bson:"deliveryDate,omitempty"`
	WorkerAssignment []WorkerAssignment `json:"workerAssignment" bson:"workerAssignment"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCutting, OrderStatusStitching,
		OrderStatusInProgress, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}

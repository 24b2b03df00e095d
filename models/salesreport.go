package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesReport is the legacy, directly-written report record. The report
// listing endpoints are always projected from salesentry; this collection is
// kept for compatibility with callers that still POST reports.
type SalesReport struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	BillNo    string             `json:"billNo" bson:"billNo"`
	Customer  string             `json:"customer" bson:"customer"`
	Phone     string             `json:"phone" bson:"phone"`
	Mode      string             `json:"mode" bson:"mode"`
	Total     float64            `json:"total" bson:"total"`
	Tax       float64            `json:"tax" bson:"tax"`
	Paid      float64            `json:"paid" bson:"paid"`
	Pending   float64            `json:"pending" bson:"pending"`
	Date      time.Time          `json:"date" bson:"date"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type SalesReportInput struct {
	BillNo   string   `json:"billNo"`
	Customer string   `json:"customer"`
	Phone    string   `json:"phone"`
	Mode     string   `json:"mode"`
	Total    *float64 `json:"total"`
	Paid     *float64 `json:"paid"`
	Pending  *float64 `json:"pending"`
	Date     string   `json:"date"`
}

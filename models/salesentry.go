package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment methods accepted on a sale
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// SalesEntryItem is one line of a sale. Amount is always computed
// server-side as rate*quantity, never taken from the caller.
type SalesEntryItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Quantity int                `json:"quantity" bson:"quantity"`
	Rate     float64            `json:"rate" bson:"rate"`
	Amount   float64            `json:"amount" bson:"amount"`
}

type SalesEntry struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerID    primitive.ObjectID `json:"customerId" bson:"customerId"`
	Items         []SalesEntryItem   `json:"items" bson:"items"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount"`
	PaidAmount    float64            `json:"paidAmount" bson:"paidAmount"`
	Balance       float64            `json:"balance" bson:"balance"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SalesEntryItemInput is the caller-supplied line: product ref, quantity and
// rate only.
type SalesEntryItemInput struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
}

type SalesEntryInput struct {
	CustomerID    string                `json:"customerId"`
	Items         []SalesEntryItemInput `json:"items"`
	PaymentMethod string                `json:"paymentMethod"`
	PaidAmount    float64               `json:"paidAmount"`
	Notes         string                `json:"notes"`
}

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCash, PaymentMethodCard:
		return true
	}
	return false
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpperBodyMeasurement struct {
	BlouseLength    *float64 `json:"blouselength,omitempty" bson:"blouselength,omitempty"`
	Shoulder        *float64 `json:"shoulder,omitempty" bson:"shoulder,omitempty"`
	Chest           *float64 `json:"chest,omitempty" bson:"chest,omitempty"`
	UpperChest      *float64 `json:"upperchest,omitempty" bson:"upperchest,omitempty"`
	Waist           *float64 `json:"waist,omitempty" bson:"waist,omitempty"`
	Hip             *float64 `json:"hip,omitempty" bson:"hip,omitempty"`
	SleeveLength    *float64 `json:"sleevelength,omitempty" bson:"sleevelength,omitempty"`
	SleeveRound     *float64 `json:"sleeveround,omitempty" bson:"sleeveround,omitempty"`
	Armhole         *float64 `json:"armhole,omitempty" bson:"armhole,omitempty"`
	FrontNeck       *float64 `json:"frontneck,omitempty" bson:"frontneck,omitempty"`
	BackNeck        *float64 `json:"backneck,omitempty" bson:"backneck,omitempty"`
	PointLength     *float64 `json:"pointlength,omitempty" bson:"pointlength,omitempty"`
	PointWidth      *float64 `json:"pointwidth,omitempty" bson:"pointwidth,omitempty"`
	TopLength       *float64 `json:"toplength,omitempty" bson:"toplength,omitempty"`
	SlideOpenLength *float64 `json:"slideopenlength,omitempty" bson:"slideopenlength,omitempty"`
	YorkLength      *float64 `json:"yorklength,omitempty" bson:"yorklength,omitempty"`
	Collar          *float64 `json:"collar,omitempty" bson:"collar,omitempty"`
	ShirtLength     *float64 `json:"shirtlength,omitempty" bson:"shirtlength,omitempty"`
}

type LowerBodyMeasurement struct {
	PantLength  *float64 `json:"pantlength,omitempty" bson:"pantlength,omitempty"`
	WaistRound  *float64 `json:"waistround,omitempty" bson:"waistround,omitempty"`
	HipRound    *float64 `json:"hipround,omitempty" bson:"hipround,omitempty"`
	Thigh       *float64 `json:"thigh,omitempty" bson:"thigh,omitempty"`
	Knee        *float64 `json:"knee,omitempty" bson:"knee,omitempty"`
	Calf        *float64 `json:"calf,omitempty" bson:"calf,omitempty"`
	Bottom      *float64 `json:"bottom,omitempty" bson:"bottom,omitempty"`
	Crotch      *float64 `json:"crotch,omitempty" bson:"crotch,omitempty"`
	SkirtLength *float64 `json:"skirtlength,omitempty" bson:"skirtlength,omitempty"`
}

// Measurement holds the body measurements for one customer. One record per
// customer, keyed on customerId.
type Measurement struct {
	ID        primitive.ObjectID    `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerID primitive.ObjectID   `json:"customerId" bson:"customerId"`
	UpperBody *UpperBodyMeasurement `json:"upperBody,omitempty" bson:"upperBody,omitempty"`
	LowerBody *LowerBodyMeasurement `json:"lowerBody,omitempty" bson:"lowerBody,omitempty"`
	Notes     string                `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt" bson:"updatedAt"`
}

type MeasurementInput struct {
	UpperBody *UpperBodyMeasurement `json:"upperBody"`
	LowerBody *LowerBodyMeasurement `json:"lowerBody"`
	Notes     string                `json:"notes"`
}

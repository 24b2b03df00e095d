package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work schedule status values, independent of the order status enum
const (
	ScheduleStatusPending    = "PENDING"
	ScheduleStatusCutting    = "CUTTING"
	ScheduleStatusStitching  = "STITCHING"
	ScheduleStatusInProgress = "IN_PROGRESS"
	ScheduleStatusReady      = "READY"
	ScheduleStatusDelivered  = "DELIVERED"
)

type WorkSchedule struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderID        primitive.ObjectID `json:"orderId" bson:"orderId"`
	WorkerID       primitive.ObjectID `json:"workerId" bson:"workerId"`
	Task           string             `json:"task" bson:"task"`
	ScheduledDate  time.Time          `json:"scheduledDate" bson:"scheduledDate"`
	StartDate      *time.Time         `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate        *time.Time         `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	EstimatedHours *float64           `json:"estimatedHours,omitempty" bson:"estimatedHours,omitempty"`
	ActualHours    *float64           `json:"actualHours,omitempty" bson:"actualHours,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func ValidScheduleStatus(s string) bool {
	switch s {
	case ScheduleStatusPending, ScheduleStatusCutting, ScheduleStatusStitching,
		ScheduleStatusInProgress, ScheduleStatusReady, ScheduleStatusDelivered:
		return true
	}
	return false
}

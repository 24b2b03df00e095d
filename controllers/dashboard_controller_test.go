package controllers

import (
	"testing"
	"time"

	"github.com/aswin-roy/jjjj/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 9, 1, 18, 45, 12, 300, time.Local)
	got := startOfDay(ts)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), got)

	// one nanosecond before midnight still belongs to the previous day
	beforeMidnight := time.Date(2026, 9, 1, 23, 59, 59, 999999999, time.Local)
	assert.Equal(t, got, startOfDay(beforeMidnight))
	assert.NotEqual(t, got, startOfDay(beforeMidnight.Add(time.Nanosecond)))
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2026, 9, 17, 8, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), startOfMonth(ts))
}

func TestUpcomingDeliveryWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.Local)
	start, end := upcomingDeliveryWindow(now, 7)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.Local), end)
}

func TestBuildUpcomingDeliveries(t *testing.T) {
	customerID := primitive.NewObjectID()
	orders := []models.Order{
		{
			ID:           primitive.NewObjectID(),
			CustomerID:   customerID,
			Item:         "sherwani",
			Status:       models.OrderStatusStitching,
			DeliveryDate: time.Date(2026, 9, 3, 0, 0, 0, 0, time.Local),
		},
		{
			ID:           primitive.NewObjectID(),
			CustomerID:   primitive.NewObjectID(),
			Item:         "blouse",
			Status:       models.OrderStatusPending,
			DeliveryDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local),
		},
	}
	customers := map[string]models.Customer{
		customerID.Hex(): {ID: customerID, Name: "Anita"},
	}

	rows := buildUpcomingDeliveries(orders, customers)
	require.Len(t, rows, 2)

	assert.Equal(t, "Anita", rows[0].Customer)
	assert.Equal(t, "sherwani", rows[0].Item)
	assert.Equal(t, "2026-09-03", rows[0].DeliveryDate)

	assert.Equal(t, "Unknown", rows[1].Customer)
	assert.Equal(t, "2026-09-05", rows[1].DeliveryDate)
}

package controllers

import (
	"testing"
	"time"

	"github.com/aswin-roy/jjjj/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildOrderViews(t *testing.T) {
	customerID := primitive.NewObjectID()
	workerID := primitive.NewObjectID()
	goneWorker := primitive.NewObjectID()

	orders := []models.Order{
		{
			ID:         primitive.NewObjectID(),
			CustomerID: customerID,
			Item:       "kurta",
			Status:     models.OrderStatusCutting,
			WorkerAssignment: []models.WorkerAssignment{
				{Worker: workerID, Task: "cutting", Date: time.Now(), Commission: 80},
				{Worker: goneWorker, Task: "stitching", Date: time.Now(), Commission: 150},
			},
		},
		{
			ID:         primitive.NewObjectID(),
			CustomerID: primitive.NewObjectID(),
			Status:     models.OrderStatusPending,
		},
	}
	customers := map[string]models.Customer{
		customerID.Hex(): {ID: customerID, Name: "Devi", Phone: "9876500000"},
	}
	workers := map[string]models.Worker{
		workerID.Hex(): {ID: workerID, Name: "Ravi"},
	}

	views := buildOrderViews(orders, customers, workers)
	require.Len(t, views, 2)

	assert.Equal(t, "Devi", views[0].CustomerName)
	assert.Equal(t, "9876500000", views[0].CustomerPhone)
	require.Len(t, views[0].WorkerAssignment, 2)
	assert.Equal(t, "Ravi", views[0].WorkerAssignment[0].WorkerName)
	assert.Equal(t, "Unknown", views[0].WorkerAssignment[1].WorkerName)
	assert.Equal(t, 150.0, views[0].WorkerAssignment[1].Commission)

	// dangling customer and no assignments
	assert.Equal(t, "Unknown", views[1].CustomerName)
	assert.Empty(t, views[1].WorkerAssignment)
}

func TestParseAssignments(t *testing.T) {
	workerA := primitive.NewObjectID()
	workerB := primitive.NewObjectID()

	t.Run("replacement list converts wholesale", func(t *testing.T) {
		parsed, err := parseAssignments([]assignmentInput{
			{Worker: workerA.Hex(), Task: "cutting", Date: "2026-08-01", Commission: 80},
			{Worker: workerB.Hex(), Task: "stitching", Date: "2026-08-10", Commission: 150},
		})
		require.NoError(t, err)
		require.Len(t, parsed, 2)
		assert.Equal(t, workerA, parsed[0].Worker)
		assert.Equal(t, "cutting", parsed[0].Task)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), parsed[0].Date)
		assert.Equal(t, 150.0, parsed[1].Commission)
	})

	t.Run("empty list clears assignments", func(t *testing.T) {
		parsed, err := parseAssignments([]assignmentInput{})
		require.NoError(t, err)
		assert.NotNil(t, parsed)
		assert.Empty(t, parsed)
	})

	t.Run("missing date defaults to now", func(t *testing.T) {
		before := time.Now()
		parsed, err := parseAssignments([]assignmentInput{
			{Worker: workerA.Hex(), Task: "finishing", Commission: 40},
		})
		require.NoError(t, err)
		assert.False(t, parsed[0].Date.Before(before))
	})

	t.Run("rejects invalid lines", func(t *testing.T) {
		_, err := parseAssignments([]assignmentInput{{Worker: "bad", Task: "cutting"}})
		assert.Error(t, err)

		_, err = parseAssignments([]assignmentInput{{Worker: workerA.Hex(), Task: ""}})
		assert.Error(t, err)

		_, err = parseAssignments([]assignmentInput{{Worker: workerA.Hex(), Task: "cutting", Commission: -1}})
		assert.Error(t, err)

		_, err = parseAssignments([]assignmentInput{{Worker: workerA.Hex(), Task: "cutting", Date: "01-08-2026"}})
		assert.Error(t, err)
	})
}

func TestCollectAssignmentWorkerIDs(t *testing.T) {
	w := primitive.NewObjectID()
	orders := []models.Order{
		{WorkerAssignment: []models.WorkerAssignment{{Worker: w}, {Worker: w}}},
		{WorkerAssignment: []models.WorkerAssignment{{Worker: primitive.NewObjectID()}}},
	}
	assert.Len(t, collectAssignmentWorkerIDs(orders), 2)
}

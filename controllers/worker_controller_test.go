package controllers

import (
	"testing"
	"time"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func assignmentRange(t *testing.T, filter bson.M) (time.Time, time.Time) {
	t.Helper()
	rangeFilter, ok := filter["workerAssignment.date"].(bson.M)
	require.True(t, ok, "filter must target the assignment date")
	return rangeFilter["$gte"].(time.Time), rangeFilter["$lte"].(time.Time)
}

func TestBuildAssignmentDateFilter(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)

	t.Run("explicit range wins over everything", func(t *testing.T) {
		filter, label, err := buildAssignmentDateFilter(
			"2026-01-10", "2026-01-20", "day", "2026-05-05", "3", "2026", now)
		require.NoError(t, err)
		start, end := assignmentRange(t, filter)
		assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, 20, end.Day())
		assert.Equal(t, "2026-01-10 to 2026-01-20", label)
	})

	t.Run("range needs both bounds, else falls through", func(t *testing.T) {
		filter, _, err := buildAssignmentDateFilter(
			"2026-01-10", "", "", "", "3", "2026", now)
		require.NoError(t, err)
		start, _ := assignmentRange(t, filter)
		assert.Equal(t, time.March, start.Month())
	})

	t.Run("single day window", func(t *testing.T) {
		filter, label, err := buildAssignmentDateFilter(
			"", "", "day", "2026-05-05", "3", "2026", now)
		require.NoError(t, err)
		start, end := assignmentRange(t, filter)
		assert.Equal(t, time.Date(2026, 5, 5, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, 5, end.Day())
		assert.Equal(t, 23, end.Hour())
		assert.Equal(t, "2026-05-05", label)
	})

	t.Run("month and year", func(t *testing.T) {
		filter, label, err := buildAssignmentDateFilter(
			"", "", "", "", "2", "2026", now)
		require.NoError(t, err)
		start, end := assignmentRange(t, filter)
		assert.Equal(t, time.February, start.Month())
		assert.Equal(t, 28, end.Day())
		assert.Equal(t, "February 2026", label)
	})

	t.Run("year alone covers the whole year", func(t *testing.T) {
		filter, label, err := buildAssignmentDateFilter(
			"", "", "", "", "", "2025", now)
		require.NoError(t, err)
		start, end := assignmentRange(t, filter)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, 2025, end.Year())
		assert.Equal(t, time.December, end.Month())
		assert.Equal(t, "2025", label)
	})

	t.Run("default is the current calendar month", func(t *testing.T) {
		filter, label, err := buildAssignmentDateFilter("", "", "", "", "", "", now)
		require.NoError(t, err)
		start, end := assignmentRange(t, filter)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, 30, end.Day())
		assert.Equal(t, "September 2026", label)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		_, _, err := buildAssignmentDateFilter("bad", "2026-01-20", "", "", "", "", now)
		assert.Error(t, err)
		_, _, err = buildAssignmentDateFilter("", "", "day", "bad", "", "", now)
		assert.Error(t, err)
		_, _, err = buildAssignmentDateFilter("", "", "", "", "0", "2026", now)
		assert.Error(t, err)
		_, _, err = buildAssignmentDateFilter("", "", "", "", "", "12", now)
		assert.Error(t, err)
	})
}

func TestAssembleWorkerReports(t *testing.T) {
	tailor := models.Worker{ID: primitive.NewObjectID(), Name: "Ravi", Role: "tailor"}
	cutter := models.Worker{ID: primitive.NewObjectID(), Name: "Suresh", Role: "cutter"}
	former := primitive.NewObjectID() // no longer on the roster

	rows := []repository.CommissionRow{
		{Worker: tailor.ID, Task: "stitching", Total: 300},
		{Worker: tailor.ID, Task: "finishing", Total: 120},
		{Worker: former, Task: "cutting", Total: 999},
	}

	reports := assembleWorkerReports([]models.Worker{tailor, cutter}, rows)
	require.Len(t, reports, 2)

	assert.Equal(t, "Ravi", reports[0].Name)
	assert.Len(t, reports[0].Tasks, 2)
	assert.Equal(t, 420.0, reports[0].TotalCommission)

	// roster workers with no earnings still appear
	assert.Equal(t, "Suresh", reports[1].Name)
	assert.Empty(t, reports[1].Tasks)
	assert.Equal(t, 0.0, reports[1].TotalCommission)

	// commissions of off-roster workers never surface
	for _, r := range reports {
		assert.NotEqual(t, 999.0, r.TotalCommission)
	}
}

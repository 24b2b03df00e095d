package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func matchStage(t *testing.T, pipeline []bson.D) bson.D {
	t.Helper()
	for _, stage := range pipeline {
		if stage[0].Key == "$match" {
			return stage[0].Value.(bson.D)
		}
	}
	return nil
}

func TestWorkerCommissionPipeline(t *testing.T) {
	workerID := primitive.NewObjectID()

	t.Run("single worker with nil filter matches only the worker", func(t *testing.T) {
		pipeline := workerCommissionPipeline(&workerID, nil)
		match := matchStage(t, pipeline)
		require.NotNil(t, match)
		require.Len(t, match, 1)
		assert.Equal(t, "workerAssignment.worker", match[0].Key)
		assert.Equal(t, workerID, match[0].Value)

		// lifetime scope: no assignment-date bound anywhere in the match
		for _, e := range match {
			assert.NotEqual(t, "workerAssignment.date", e.Key)
		}
	})

	t.Run("date filter adds the assignment-date bound", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
		pipeline := workerCommissionPipeline(nil, bson.M{
			"workerAssignment.date": bson.M{"$gte": start},
		})
		match := matchStage(t, pipeline)
		require.NotNil(t, match)
		require.Len(t, match, 1)
		assert.Equal(t, "workerAssignment.date", match[0].Key)
	})

	t.Run("no worker and no filter skips the match stage", func(t *testing.T) {
		pipeline := workerCommissionPipeline(nil, nil)
		assert.Nil(t, matchStage(t, pipeline))
		assert.Equal(t, "$unwind", pipeline[0][0].Key)
	})
}

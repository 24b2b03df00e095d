package repository

import (
	"context"
	"time"

	"github.com/aswin-roy/jjjj/config"
	"github.com/aswin-roy/jjjj/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func workerCol() *mongo.Collection { return config.WorkerCollection }

func GetAllWorkers() ([]models.Worker, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := workerCol().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	for cursor.Next(ctx) {
		var w models.Worker
		if err := cursor.Decode(&w); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, cursor.Err()
}

// GetWorkersByIDs bulk-loads workers keyed by hex id.
func GetWorkersByIDs(ids []primitive.ObjectID) (map[string]models.Worker, error) {
	result := make(map[string]models.Worker)
	if len(ids) == 0 {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := workerCol().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var w models.Worker
		if err := cursor.Decode(&w); err != nil {
			return nil, err
		}
		result[w.ID.Hex()] = w
	}
	return result, cursor.Err()
}

func GetWorkerByID(id primitive.ObjectID) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var w models.Worker
	if err := workerCol().FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

func CreateWorker(w models.Worker) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return workerCol().InsertOne(ctx, w)
}

func UpdateWorker(id primitive.ObjectID, set bson.M) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Worker
	err := workerCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteWorker(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return workerCol().DeleteOne(ctx, bson.M{"_id": id})
}

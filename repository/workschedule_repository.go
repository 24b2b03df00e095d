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

func workScheduleCol() *mongo.Collection { return config.WorkScheduleCollection }

func EnsureWorkScheduleIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := workScheduleCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "orderId", Value: 1}, {Key: "workerId", Value: 1}}},
		{Keys: bson.D{{Key: "scheduledDate", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}

func CreateWorkSchedule(s models.WorkSchedule) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return workScheduleCol().InsertOne(ctx, s)
}

func GetWorkScheduleByID(id primitive.ObjectID) (*models.WorkSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var s models.WorkSchedule
	if err := workScheduleCol().FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListWorkSchedules returns one page plus the total matching count.
func ListWorkSchedules(filter bson.M, sortField string, sortOrder int, skip, limit int64) ([]models.WorkSchedule, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := workScheduleCol().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortOrder}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := workScheduleCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var schedules []models.WorkSchedule
	for cursor.Next(ctx) {
		var s models.WorkSchedule
		if err := cursor.Decode(&s); err != nil {
			return nil, 0, err
		}
		schedules = append(schedules, s)
	}
	return schedules, total, cursor.Err()
}

// FindWorkSchedules returns all schedules matching filter, scheduledDate
// ascending.
func FindWorkSchedules(filter bson.M) ([]models.WorkSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})
	cursor, err := workScheduleCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []models.WorkSchedule
	for cursor.Next(ctx) {
		var s models.WorkSchedule
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, cursor.Err()
}

func UpdateWorkSchedule(id primitive.ObjectID, set bson.M) (*models.WorkSchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.WorkSchedule
	err := workScheduleCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteWorkSchedule(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return workScheduleCol().DeleteOne(ctx, bson.M{"_id": id})
}

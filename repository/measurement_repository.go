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

func measurementCol() *mongo.Collection { return config.MeasurementCollection }

func EnsureMeasurementIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := measurementCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func GetAllMeasurements() ([]models.Measurement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := measurementCol().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Measurement
	for cursor.Next(ctx) {
		var m models.Measurement
		if err := cursor.Decode(&m); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, cursor.Err()
}

func GetMeasurementByCustomer(customerID primitive.ObjectID) (*models.Measurement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var m models.Measurement
	if err := measurementCol().FindOne(ctx, bson.M{"customerId": customerID}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpsertMeasurement creates or replaces the measurement fields for a
// customer, returning the post-update document.
func UpsertMeasurement(customerID primitive.ObjectID, set bson.M) (*models.Measurement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"customerId": customerID, "createdAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var m models.Measurement
	err := measurementCol().FindOneAndUpdate(ctx, bson.M{"customerId": customerID}, update, opts).Decode(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMeasurement updates an existing measurement only; mongo.ErrNoDocuments
// when the customer has none yet.
func UpdateMeasurement(customerID primitive.ObjectID, set bson.M) (*models.Measurement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m models.Measurement
	err := measurementCol().FindOneAndUpdate(ctx, bson.M{"customerId": customerID}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

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

func customerCol() *mongo.Collection { return config.CustomerCollection }

func GetAllCustomers() ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := customerCol().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	for cursor.Next(ctx) {
		var c models.Customer
		if err := cursor.Decode(&c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, cursor.Err()
}

func GetCustomerByID(id primitive.ObjectID) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var c models.Customer
	if err := customerCol().FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCustomersByIDs bulk-loads customers for report projection, keyed by hex id.
func GetCustomersByIDs(ids []primitive.ObjectID) (map[string]models.Customer, error) {
	result := map[string]models.Customer{}
	if len(ids) == 0 {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := customerCol().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var c models.Customer
		if err := cursor.Decode(&c); err != nil {
			return nil, err
		}
		result[c.ID.Hex()] = c
	}
	return result, cursor.Err()
}

func CreateCustomer(c models.Customer) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return customerCol().InsertOne(ctx, c)
}

// UpdateCustomer applies the non-empty fields and returns the updated document.
func UpdateCustomer(id primitive.ObjectID, in models.CustomerInput) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set := bson.M{}
	if in.Name != "" {
		set["customername"] = in.Name
	}
	if in.Phone != "" {
		set["customerphone"] = in.Phone
	}
	if in.Address != "" {
		set["customeraddress"] = in.Address
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Customer
	err := customerCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteCustomer(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return customerCol().DeleteOne(ctx, bson.M{"_id": id})
}

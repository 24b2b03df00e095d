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

func inventoryCol() *mongo.Collection { return config.InventoryCollection }

func EnsureInventoryIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := inventoryCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "skucode", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}

func GetAllInventory() ([]models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := inventoryCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	for cursor.Next(ctx) {
		var it models.InventoryItem
		if err := cursor.Decode(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, cursor.Err()
}

func GetInventoryByID(id primitive.ObjectID) (*models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var it models.InventoryItem
	if err := inventoryCol().FindOne(ctx, bson.M{"_id": id}).Decode(&it); err != nil {
		return nil, err
	}
	return &it, nil
}

// GetInventoryByIDs bulk-loads items for invoice projection, keyed by hex id.
func GetInventoryByIDs(ids []primitive.ObjectID) (map[string]models.InventoryItem, error) {
	result := map[string]models.InventoryItem{}
	if len(ids) == 0 {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := inventoryCol().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var it models.InventoryItem
		if err := cursor.Decode(&it); err != nil {
			return nil, err
		}
		result[it.ID.Hex()] = it
	}
	return result, cursor.Err()
}

func CreateInventory(it models.InventoryItem) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return inventoryCol().InsertOne(ctx, it)
}

// inventoryUpdateSet builds the $set document for a partial update. String
// fields are skipped when empty; price and stock apply whenever supplied,
// including an explicit 0.
func inventoryUpdateSet(in models.InventoryInput) bson.M {
	set := bson.M{}
	if in.ProductName != "" {
		set["productname"] = in.ProductName
	}
	if in.SKUCode != "" {
		set["skucode"] = in.SKUCode
	}
	if in.Category != "" {
		set["category"] = in.Category
	}
	if in.Price != nil {
		set["price"] = *in.Price
	}
	if in.Stock != nil {
		set["stock"] = *in.Stock
	}
	return set
}

func UpdateInventory(id primitive.ObjectID, in models.InventoryInput) (*models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	set := inventoryUpdateSet(in)
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.InventoryItem
	err := inventoryCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteInventory(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return inventoryCol().DeleteOne(ctx, bson.M{"_id": id})
}

// DecrementStock atomically reduces an item's stock by qty. Stock is allowed
// to go negative when a sale exceeds what is on hand.
func DecrementStock(id primitive.ObjectID, qty int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"stock": -qty},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	_, err := inventoryCol().UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

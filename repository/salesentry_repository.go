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

func salesEntryCol() *mongo.Collection { return config.SalesEntryCollection }

func EnsureSalesEntryIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := salesEntryCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "balance", Value: 1}}},
	})
	return err
}

func CreateSalesEntry(e models.SalesEntry) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return salesEntryCol().InsertOne(ctx, e)
}

func GetSalesEntryByID(id primitive.ObjectID) (*models.SalesEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var e models.SalesEntry
	if err := salesEntryCol().FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func GetAllSalesEntries() ([]models.SalesEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := salesEntryCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.SalesEntry
	for cursor.Next(ctx) {
		var e models.SalesEntry
		if err := cursor.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, cursor.Err()
}

// ListSalesEntries returns one page of entries matching filter plus the total
// matching count (counted before pagination).
func ListSalesEntries(filter bson.M, sortField string, sortOrder int, skip, limit int64) ([]models.SalesEntry, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := salesEntryCol().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortOrder}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := salesEntryCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var entries []models.SalesEntry
	for cursor.Next(ctx) {
		var e models.SalesEntry
		if err := cursor.Decode(&e); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, cursor.Err()
}

func UpdateSalesEntry(id primitive.ObjectID, set bson.M) (*models.SalesEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.SalesEntry
	err := salesEntryCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteSalesEntry(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return salesEntryCol().DeleteOne(ctx, bson.M{"_id": id})
}

// SumTotalAmountSince sums totalAmount over entries created at or after t.
func SumTotalAmountSince(t time.Time) (float64, error) {
	return sumSalesEntryField(bson.M{"createdAt": bson.M{"$gte": t}}, "$totalAmount")
}

// SumUnpaidBalance sums balance over entries still carrying a positive balance.
func SumUnpaidBalance() (float64, error) {
	return sumSalesEntryField(bson.M{"balance": bson.M{"$gt": 0}}, "$balance")
}

func sumSalesEntryField(match bson.M, field string) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: field}}},
		}}},
	}
	cursor, err := salesEntryCol().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var row struct {
			Total float64 `bson:"total"`
		}
		if err := cursor.Decode(&row); err != nil {
			return 0, err
		}
		return row.Total, nil
	}
	return 0, cursor.Err()
}

// SalesSummary is the aggregate over a report window.
type SalesSummary struct {
	TotalRevenue       float64 `json:"totalRevenue" bson:"totalRevenue"`
	OrdersCount        int64   `json:"ordersCount" bson:"ordersCount"`
	OutstandingBalance float64 `json:"outstandingBalance" bson:"outstandingBalance"`
	TotalPaid          float64 `json:"totalPaid" bson:"totalPaid"`
}

func AggregateSalesSummary(dateFilter bson.M) (*SalesSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: dateFilter}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$totalAmount"}}},
			{Key: "ordersCount", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "outstandingBalance", Value: bson.D{{Key: "$sum", Value: "$balance"}}},
			{Key: "totalPaid", Value: bson.D{{Key: "$sum", Value: "$paidAmount"}}},
		}}},
	}
	cursor, err := salesEntryCol().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var s SalesSummary
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}
		return &s, nil
	}
	// No entries in the window: everything zero
	return &SalesSummary{}, cursor.Err()
}

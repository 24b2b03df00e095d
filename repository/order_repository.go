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

func orderCol() *mongo.Collection { return config.OrderCollection }

func EnsureOrderIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := orderCol().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "deliveryDate", Value: 1}}},
	})
	return err
}

func GetAllOrders() ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := orderCol().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, cursor.Err()
}

func GetOrderByID(id primitive.ObjectID) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var o models.Order
	if err := orderCol().FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

func CreateOrder(o models.Order) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return orderCol().InsertOne(ctx, o)
}

func UpdateOrder(id primitive.ObjectID, set bson.M) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Order
	err := orderCol().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// PushWorkerAssignment appends one assignment to an order's workerAssignment
// array and returns the updated order.
func PushWorkerAssignment(id primitive.ObjectID, wa models.WorkerAssignment) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Order
	err := orderCol().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"workerAssignment": wa}},
		opts,
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteOrder(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return orderCol().DeleteOne(ctx, bson.M{"_id": id})
}

func CountOrdersByStatus(statuses []string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return orderCol().CountDocuments(ctx, bson.M{"status": bson.M{"$in": statuses}})
}

// GetUpcomingDeliveries returns orders due within [start, end] that have not
// been delivered yet, soonest first.
func GetUpcomingDeliveries(start, end time.Time) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"deliveryDate": bson.M{"$gte": start, "$lte": end},
		"status":       bson.M{"$ne": models.OrderStatusDelivered},
	}
	opts := options.Find().SetSort(bson.D{{Key: "deliveryDate", Value: 1}})
	cursor, err := orderCol().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var o models.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, cursor.Err()
}

// CommissionRow is one unwound workerAssignment group: commission summed per
// worker+task pair.
type CommissionRow struct {
	Worker primitive.ObjectID `bson:"worker"`
	Task   string             `bson:"task"`
	Total  float64            `bson:"total"`
}

// workerCommissionPipeline builds the unwind/match/group/project stages.
// A nil or empty dateFilter means the whole assignment history is in scope.
func workerCommissionPipeline(worker *primitive.ObjectID, dateFilter bson.M) mongo.Pipeline {
	match := bson.D{}
	if worker != nil {
		match = append(match, bson.E{Key: "workerAssignment.worker", Value: *worker})
	}
	for k, v := range dateFilter {
		match = append(match, bson.E{Key: k, Value: v})
	}

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$workerAssignment"}},
	}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "worker", Value: "$workerAssignment.worker"},
				{Key: "task", Value: "$workerAssignment.task"},
			}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$workerAssignment.commission", 0}},
			}}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "worker", Value: "$_id.worker"},
			{Key: "task", Value: "$_id.task"},
			{Key: "total", Value: 1},
		}}},
	)
	return pipeline
}

// AggregateWorkerCommission unwinds orders' workerAssignment and sums
// commission per worker and task. worker narrows to one worker when non-nil;
// dateFilter (over the assignment's own date field) narrows the window when
// non-empty.
func AggregateWorkerCommission(worker *primitive.ObjectID, dateFilter bson.M) ([]CommissionRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := orderCol().Aggregate(ctx, workerCommissionPipeline(worker, dateFilter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []CommissionRow
	for cursor.Next(ctx) {
		var r CommissionRow
		if err := cursor.Decode(&r); err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}
	return rows, cursor.Err()
}

package repository

import (
	"context"
	"time"

	"github.com/aswin-roy/jjjj/config"
	"github.com/aswin-roy/jjjj/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func salesReportCol() *mongo.Collection { return config.SalesReportCollection }

func EnsureSalesReportIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := salesReportCol().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "billNo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreateSalesReport inserts a legacy direct report record. A duplicate billNo
// surfaces as a mongo duplicate-key write error; the caller maps it to a
// conflict response.
func CreateSalesReport(r models.SalesReport) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return salesReportCol().InsertOne(ctx, r)
}

package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global handles for every collection the API touches
var (
	DB                     *mongo.Database
	CustomerCollection     *mongo.Collection
	InventoryCollection    *mongo.Collection
	OrderCollection        *mongo.Collection
	WorkerCollection       *mongo.Collection
	SalesEntryCollection   *mongo.Collection
	SalesReportCollection  *mongo.Collection
	WorkScheduleCollection *mongo.Collection
	MeasurementCollection  *mongo.Collection
	UserCollection         *mongo.Collection
)

func ConnectDB() {
	mongoURI := os.Getenv("MONGO_URI")
	dbName := os.Getenv("DB_NAME")

	// Defaults for local development if env not set
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	if dbName == "" {
		dbName = "tailorshop"
	}

	clientOptions := options.Client().ApplyURI(mongoURI)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB is not reachable: ", err)
	}

	log.Println("connected to MongoDB")

	DB = client.Database(dbName)

	CustomerCollection = DB.Collection("customers")
	InventoryCollection = DB.Collection("inventory")
	OrderCollection = DB.Collection("orders")
	WorkerCollection = DB.Collection("workers")
	SalesEntryCollection = DB.Collection("salesentry")
	SalesReportCollection = DB.Collection("salesreport")
	WorkScheduleCollection = DB.Collection("workschedule")
	MeasurementCollection = DB.Collection("measurements")
	UserCollection = DB.Collection("users")
}

func GetCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}

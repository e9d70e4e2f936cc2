package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	// Check connection
	if err := c.Ping(ctx, nil); err != nil {
		return err
	}

	client = c
	log.Println("✅ Connected to MongoDB!")
	return nil
}

func GetCollection(database string, collection string) *mongo.Collection {
	return client.Database(database).Collection(collection)
}

// Disconnect closes the MongoDB connection gracefully.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

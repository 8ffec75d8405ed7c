package client

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongoClient builds the single process-wide client shared by every
// request. The driver pools connections internally, so no per-request
// acquisition happens anywhere else.
func InitMongoClient(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("invalid mongo configuration:", err)
	}

	// An unreachable store is logged but not fatal: the server keeps
	// listening and each route surfaces its own operation error.
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Println("mongo ping failed:", err)
	}

	return mongoClient
}

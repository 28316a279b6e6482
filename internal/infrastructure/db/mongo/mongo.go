package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds the initial connect and every repository operation.
const defaultTimeout = 10 * time.Second

// Collection names shared by the repositories in this package.
const (
	collSuppliers = "suppliers"
	collHotels    = "hotels"
	collPayments  = "payments"
	collUsers     = "users"
	collActivity  = "activity_logs"
)

// Connect establishes a client against uri, verifies connectivity with a
// ping and returns the named database handle.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(database), nil
}

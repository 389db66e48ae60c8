package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DBOptions struct {
	URI       string
	Database  string
	ConnectTO time.Duration
	PingTO    time.Duration
}

func OpenDB(ctx context.Context, opt DBOptions) (*mongo.Database, error) {
	if opt.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}
	if opt.ConnectTO == 0 {
		opt.ConnectTO = 10 * time.Second
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(opt.URI))
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	pctx, pcancel := context.WithTimeout(ctx, opt.PingTO)
	defer pcancel()

	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return client.Database(opt.Database), nil
}

// EnsureIndexes creates the unique slug indexes backing the duplicate-slug
// checks. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	slugIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, coll := range []string{"blogs", "papers"} {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, slugIndex); err != nil {
			return fmt.Errorf("create %s slug index: %w", coll, err)
		}
	}
	return nil
}

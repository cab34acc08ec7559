// Package mongo provides a MongoDB-backed record store. Documents keep the
// field names existing consumers of the collection read.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Defaults for the database and collection holding records.
const (
	DefaultDatabase   = "sara"
	DefaultCollection = "records"
)

// connectTimeout bounds server selection when opening the connection.
const connectTimeout = 10 * time.Second

// DB represents a MongoDB connection scoped to one collection.
type DB struct {
	uri        string
	database   string
	collection string

	client *mongo.Client
	coll   *mongo.Collection
}

// Option configures a DB.
type Option func(*DB)

// WithDatabase sets the database name.
func WithDatabase(name string) Option {
	return func(db *DB) {
		db.database = name
	}
}

// WithCollection sets the collection name.
func WithCollection(name string) Option {
	return func(db *DB) {
		db.collection = name
	}
}

// NewDB creates a new DB for the given connection string.
func NewDB(uri string, opts ...Option) *DB {
	db := &DB{
		uri:        uri,
		database:   DefaultDatabase,
		collection: DefaultCollection,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Open connects, verifies the server is reachable, and ensures the unique
// title index exists.
func (db *DB) Open(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(db.uri).
		SetServerSelectionTimeout(connectTimeout))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	coll := client.Database(db.database).Collection(db.collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("title_unique"),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to create title index: %w", err)
	}

	db.client = client
	db.coll = coll
	return nil
}

// Close disconnects from the server.
func (db *DB) Close(ctx context.Context) error {
	if db.client != nil {
		return db.client.Disconnect(ctx)
	}
	return nil
}

// Drop removes the whole database. Used by tests.
func (db *DB) Drop(ctx context.Context) error {
	if db.client == nil {
		return nil
	}
	return db.client.Database(db.database).Drop(ctx)
}

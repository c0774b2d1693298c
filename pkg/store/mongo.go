package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	gkerrors "github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/schema"
)

// MongoStore persists layout documents in a MongoDB collection, one document
// per layout keyed by name.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoOptions configures a MongoDB store connection.
type MongoOptions struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name. Defaults to "gridkit".
	Database string

	// Collection is the collection name. Defaults to "layouts".
	Collection string
}

// NewMongoStore connects to MongoDB, verifies the connection, and ensures
// the unique index on layout names.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.Database == "" {
		opts.Database = "gridkit"
	}
	if opts.Collection == "" {
		opts.Collection = "layouts"
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "connect %s", opts.URI)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "ping %s", opts.URI)
	}

	coll := client.Database(opts.Database).Collection(opts.Collection)
	_, err = coll.Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "create name index")
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Get retrieves a document by name.
func (s *MongoStore) Get(ctx context.Context, name string) (schema.Document, error) {
	var doc schema.Document
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return schema.Document{}, gkerrors.New(gkerrors.ErrCodeLayoutNotFound, "layout %q not found", name)
	}
	if err != nil {
		return schema.Document{}, gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "load layout %q", name)
	}
	return doc, nil
}

// Put stores a document under its name, replacing any existing one.
func (s *MongoStore) Put(ctx context.Context, doc schema.Document) error {
	if err := gkerrors.ValidateLayoutName(doc.Name); err != nil {
		return err
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"name": doc.Name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "save layout %q", doc.Name)
	}
	return nil
}

// Delete removes a document by name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "delete layout %q", name)
	}
	if res.DeletedCount == 0 {
		return gkerrors.New(gkerrors.ErrCodeLayoutNotFound, "layout %q not found", name)
	}
	return nil
}

// List returns the stored names in lexical order.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1, "_id": 0}).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "list layouts")
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var row struct {
			Name string `bson:"name"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "decode layout name")
		}
		names = append(names, row.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, gkerrors.Wrap(gkerrors.ErrCodeStorage, err, "list layouts")
	}
	return names, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)

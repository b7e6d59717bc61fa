package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skyviewhq/skyview-api/internal/store"
)

// insertOne inserts a single document and returns its assigned ObjectID.
func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (store.InsertResult, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return store.InsertResult{}, fmt.Errorf("failed to insert into %s: %w", coll.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return store.InsertResult{}, fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}

	return store.InsertResult{InsertedID: id}, nil
}

// findAll runs a filter query and decodes every matching document.
// A nil opts runs the query without options.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	var findOpts []*options.FindOptions
	if opts != nil {
		findOpts = append(findOpts, opts)
	}

	cursor, err := coll.Find(ctx, filter, findOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}

	// Start with a non-nil slice so an empty result serializes as a JSON
	// array, not null.
	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", coll.Name(), err)
	}

	return results, nil
}

// parseObjectID converts a hex path/query parameter into an ObjectID,
// mapping parse failures onto store.ErrInvalidID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}

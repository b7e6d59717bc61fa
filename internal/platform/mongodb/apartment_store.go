package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// ApartmentStore implements store.ApartmentStore over the apartments
// collection.
type ApartmentStore struct {
	coll *mongo.Collection
}

// Ensure ApartmentStore implements store.ApartmentStore.
var _ store.ApartmentStore = (*ApartmentStore)(nil)

// NewApartmentStore creates the MongoDB implementation of
// store.ApartmentStore.
func NewApartmentStore(db *Database) *ApartmentStore {
	return &ApartmentStore{coll: db.collection(apartmentsCollection)}
}

// List returns one page of apartments in insertion order. Page is 1-based;
// a size of zero or less returns the whole collection.
func (s *ApartmentStore) List(ctx context.Context, page, size int64) ([]domain.Apartment, error) {
	opts := pageOptions(page, size)
	return findAll[domain.Apartment](ctx, s.coll, bson.M{}, opts)
}

// Count returns the estimated total number of apartments. The estimate
// reads collection metadata instead of scanning, which is what the count
// endpoint wants regardless of any pagination parameters.
func (s *ApartmentStore) Count(ctx context.Context) (int64, error) {
	count, err := s.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count apartments: %w", err)
	}
	return count, nil
}

// CountByStatus returns the exact number of apartments in the given status.
func (s *ApartmentStore) CountByStatus(ctx context.Context, status domain.ApartmentStatus) (int64, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count apartments by status: %w", err)
	}
	return count, nil
}

// SetStatus updates the status of the apartment with the given hex ID.
func (s *ApartmentStore) SetStatus(ctx context.Context, id string, status domain.ApartmentStatus) (store.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return store.UpdateResult{}, err
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to update apartment status: %w", err)
	}

	return store.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// pageOptions translates 1-based page/size parameters into driver skip and
// limit options. Nil means no pagination.
func pageOptions(page, size int64) *options.FindOptions {
	if size <= 0 {
		return nil
	}
	if page < 1 {
		page = 1
	}
	return options.Find().SetSkip((page - 1) * size).SetLimit(size)
}

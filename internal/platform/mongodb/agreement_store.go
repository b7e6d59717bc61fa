package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// AgreementStore implements store.AgreementStore over the agreements
// collection.
type AgreementStore struct {
	coll *mongo.Collection
}

// Ensure AgreementStore implements store.AgreementStore.
var _ store.AgreementStore = (*AgreementStore)(nil)

// NewAgreementStore creates the MongoDB implementation of
// store.AgreementStore.
func NewAgreementStore(db *Database) *AgreementStore {
	return &AgreementStore{coll: db.collection(agreementsCollection)}
}

// Create inserts the agreement after checking the email holds no existing
// agreement record of any status. The check deliberately ignores status:
// a checked (even rejected) agreement still blocks a new application.
func (s *AgreementStore) Create(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error) {
	err := s.coll.FindOne(ctx, bson.M{"email": agreement.Email}).Err()
	if err == nil {
		return store.InsertResult{}, store.ErrAgreementExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return store.InsertResult{}, fmt.Errorf("failed to check existing agreement: %w", err)
	}

	return insertOne(ctx, s.coll, agreement)
}

// GetByEmail returns the agreement held by the given email, or
// store.ErrAgreementNotFound.
func (s *AgreementStore) GetByEmail(ctx context.Context, email string) (*domain.Agreement, error) {
	var agreement domain.Agreement
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&agreement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrAgreementNotFound
		}
		return nil, fmt.Errorf("failed to get agreement by email: %w", err)
	}
	return &agreement, nil
}

// List returns all agreements in insertion order.
func (s *AgreementStore) List(ctx context.Context) ([]domain.Agreement, error) {
	return findAll[domain.Agreement](ctx, s.coll, bson.M{}, nil)
}

// SetDecision marks the agreement checked and records the accept date.
// The update is unconditional: approval and rejection write the same
// status, only the caller's side effects differ.
func (s *AgreementStore) SetDecision(ctx context.Context, id string, status domain.AgreementStatus, acceptDate string) (store.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return store.UpdateResult{}, err
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "acceptDate": acceptDate}})
	if err != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to update agreement decision: %w", err)
	}

	return store.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// PaymentStore implements store.PaymentStore over the payments collection.
type PaymentStore struct {
	coll *mongo.Collection
}

var _ store.PaymentStore = (*PaymentStore)(nil)

// NewPaymentStore creates the MongoDB implementation of store.PaymentStore.
func NewPaymentStore(db *Database) *PaymentStore {
	return &PaymentStore{coll: db.collection(paymentsCollection)}
}

// Create inserts the payment record.
func (s *PaymentStore) Create(ctx context.Context, payment *domain.Payment) (store.InsertResult, error) {
	return insertOne(ctx, s.coll, payment)
}

// ListByEmail returns the payments recorded for the email. A non-empty
// monthSearch narrows the result to months containing it as a
// case-insensitive substring; the search term is quoted so regex
// metacharacters in user input match literally.
func (s *PaymentStore) ListByEmail(ctx context.Context, email, monthSearch string) ([]domain.Payment, error) {
	filter := bson.M{"email": email}
	if monthSearch != "" {
		filter["month"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(monthSearch),
			Options: "i",
		}
	}
	return findAll[domain.Payment](ctx, s.coll, filter, nil)
}

package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// CouponStore implements store.CouponStore over the coupons collection.
type CouponStore struct {
	coll *mongo.Collection
}

var _ store.CouponStore = (*CouponStore)(nil)

// NewCouponStore creates the MongoDB implementation of store.CouponStore.
func NewCouponStore(db *Database) *CouponStore {
	return &CouponStore{coll: db.collection(couponsCollection)}
}

// Create inserts the coupon.
func (s *CouponStore) Create(ctx context.Context, coupon *domain.Coupon) (store.InsertResult, error) {
	return insertOne(ctx, s.coll, coupon)
}

// List returns all coupons in insertion order.
func (s *CouponStore) List(ctx context.Context) ([]domain.Coupon, error) {
	return findAll[domain.Coupon](ctx, s.coll, bson.M{}, nil)
}

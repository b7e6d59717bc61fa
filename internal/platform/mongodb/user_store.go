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

// UserStore implements store.UserStore over the users collection.
type UserStore struct {
	coll *mongo.Collection
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates the MongoDB implementation of store.UserStore.
func NewUserStore(db *Database) *UserStore {
	return &UserStore{coll: db.collection(usersCollection)}
}

// Create inserts the user after checking no user with the same email
// exists. The check and insert are two separate operations, so a
// concurrent registration of the same email can still slip through; the
// registration flow tolerates the resulting duplicate check on read.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (store.InsertResult, error) {
	err := s.coll.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return store.InsertResult{}, store.ErrEmailExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return store.InsertResult{}, fmt.Errorf("failed to check existing user: %w", err)
	}

	return insertOne(ctx, s.coll, user)
}

// GetByEmail returns the user with the given email, or store.ErrUserNotFound.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// List returns all users in insertion order.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	return findAll[domain.User](ctx, s.coll, bson.M{}, nil)
}

// ListByRole returns the users holding the given role.
func (s *UserStore) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return findAll[domain.User](ctx, s.coll, bson.M{"role": role}, nil)
}

// SetRoleByEmail updates the role of the user with the given email.
// RoleNone is written as an unset by clearing the field to the empty
// string, matching the stored representation.
func (s *UserStore) SetRoleByEmail(ctx context.Context, email string, role domain.Role) (store.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to update user role: %w", err)
	}
	return store.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

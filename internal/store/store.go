package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skyviewhq/skyview-api/internal/domain"
)

// InsertResult carries the ID assigned to a newly inserted document.
// Handlers serialize it directly, mirroring the driver's insert result.
type InsertResult struct {
	InsertedID primitive.ObjectID `json:"insertedId"`
}

// UpdateResult carries the match/modify counts of an update, mirroring the
// driver's update result shape.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Transactor runs fn inside a single multi-document transaction. Store
// calls made with the context passed to fn join that transaction, so the
// rental workflow's cross-collection writes commit or abort together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserStore defines operations on the users collection.
type UserStore interface {
	// Create inserts the user. Returns ErrEmailExists if a user with the
	// same email is already registered (pre-insert existence check).
	Create(ctx context.Context, user *domain.User) (InsertResult, error)

	// GetByEmail returns the user with the given email, or ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users in insertion order.
	List(ctx context.Context) ([]domain.User, error)

	// ListByRole returns the users holding the given role.
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)

	// SetRoleByEmail updates the role of the user with the given email.
	// A missing user yields a zero MatchedCount, not an error.
	SetRoleByEmail(ctx context.Context, email string, role domain.Role) (UpdateResult, error)
}

// ApartmentStore defines operations on the apartments collection.
type ApartmentStore interface {
	// List returns one page of apartments in insertion order. Page is
	// 1-based; a size of zero or less returns the whole collection.
	List(ctx context.Context, page, size int64) ([]domain.Apartment, error)

	// Count returns the estimated total number of apartments.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the exact number of apartments in the given status.
	CountByStatus(ctx context.Context, status domain.ApartmentStatus) (int64, error)

	// SetStatus updates the status of the apartment with the given hex ID.
	// Returns ErrInvalidID if id is not a valid ObjectID.
	SetStatus(ctx context.Context, id string, status domain.ApartmentStatus) (UpdateResult, error)
}

// AgreementStore defines operations on the agreements collection.
type AgreementStore interface {
	// Create inserts the agreement. Returns ErrAgreementExists if the email
	// already holds an agreement record of any status.
	Create(ctx context.Context, agreement *domain.Agreement) (InsertResult, error)

	// GetByEmail returns the agreement held by the given email, or
	// ErrAgreementNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.Agreement, error)

	// List returns all agreements in insertion order.
	List(ctx context.Context) ([]domain.Agreement, error)

	// SetDecision marks the agreement checked and records the accept date.
	// Returns ErrInvalidID if id is not a valid ObjectID.
	SetDecision(ctx context.Context, id string, status domain.AgreementStatus, acceptDate string) (UpdateResult, error)
}

// CouponStore defines operations on the coupons collection.
type CouponStore interface {
	Create(ctx context.Context, coupon *domain.Coupon) (InsertResult, error)
	List(ctx context.Context) ([]domain.Coupon, error)
}

// AnnouncementStore defines operations on the announcements collection.
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *domain.Announcement) (InsertResult, error)
	List(ctx context.Context) ([]domain.Announcement, error)
}

// PaymentStore defines operations on the payments collection.
type PaymentStore interface {
	Create(ctx context.Context, payment *domain.Payment) (InsertResult, error)

	// ListByEmail returns the payments recorded for the email. A non-empty
	// monthSearch narrows the result to months containing it,
	// case-insensitively.
	ListByEmail(ctx context.Context, email, monthSearch string) ([]domain.Payment, error)
}

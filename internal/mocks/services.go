package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/service/auth"
	"github.com/skyviewhq/skyview-api/internal/service/rental"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// MockRentalService implements rental.Service for handler tests.
type MockRentalService struct {
	ApplyFn   func(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error)
	DecideFn  func(ctx context.Context, decision rental.Decision) (store.UpdateResult, error)
	MoveOutFn func(ctx context.Context, email string) (store.UpdateResult, error)

	// Recorded arguments from the most recent calls
	LastDecision     rental.Decision
	LastMoveOutEmail string
}

var _ rental.Service = (*MockRentalService)(nil)

func (m *MockRentalService) Apply(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error) {
	if m.ApplyFn != nil {
		return m.ApplyFn(ctx, agreement)
	}
	return store.InsertResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *MockRentalService) Decide(ctx context.Context, decision rental.Decision) (store.UpdateResult, error) {
	m.LastDecision = decision
	if m.DecideFn != nil {
		return m.DecideFn(ctx, decision)
	}
	return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *MockRentalService) MoveOut(ctx context.Context, email string) (store.UpdateResult, error) {
	m.LastMoveOutEmail = email
	if m.MoveOutFn != nil {
		return m.MoveOutFn(ctx, email)
	}
	return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// MockTokenService implements auth.TokenService for tests that do not need
// real signing.
type MockTokenService struct {
	IssueFn  func(ctx context.Context, claims map[string]interface{}) (string, error)
	VerifyFn func(ctx context.Context, token string) (*auth.Claims, error)
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) Issue(ctx context.Context, claims map[string]interface{}) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, claims)
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", auth.ErrMissingEmailClaim
	}
	return "mock-token-" + email, nil
}

func (m *MockTokenService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	if token == "" {
		return nil, auth.ErrMissingToken
	}
	return &auth.Claims{Email: "user@example.com"}, nil
}

// MockPaymentGateway implements the payment handler's gateway interface.
type MockPaymentGateway struct {
	CreatePaymentIntentFn func(ctx context.Context, price float64) (string, error)

	// LastPrice records the price from the most recent call.
	LastPrice float64
}

func (m *MockPaymentGateway) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	m.LastPrice = price
	if m.CreatePaymentIntentFn != nil {
		return m.CreatePaymentIntentFn(ctx, price)
	}
	return "pi_mock_secret", nil
}

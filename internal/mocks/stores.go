// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock uses optional function fields to override
// behavior, with a usable in-memory default behind them.
package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, user *domain.User) (store.InsertResult, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	ListFn           func(ctx context.Context) ([]domain.User, error)
	ListByRoleFn     func(ctx context.Context, role domain.Role) ([]domain.User, error)
	SetRoleByEmailFn func(ctx context.Context, email string, role domain.Role) (store.UpdateResult, error)

	// Data for default implementation, keyed by email
	Users map[string]*domain.User
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) (store.InsertResult, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if _, exists := m.Users[user.Email]; exists {
		return store.InsertResult{}, store.ErrEmailExists
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	m.Users[user.Email] = user
	return store.InsertResult{InsertedID: user.ID}, nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	users := make([]domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		users = append(users, *user)
	}
	return users, nil
}

func (m *MockUserStore) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	users := []domain.User{}
	for _, user := range m.Users {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (m *MockUserStore) SetRoleByEmail(ctx context.Context, email string, role domain.Role) (store.UpdateResult, error) {
	if m.SetRoleByEmailFn != nil {
		return m.SetRoleByEmailFn(ctx, email, role)
	}
	user, exists := m.Users[email]
	if !exists {
		return store.UpdateResult{}, nil
	}
	modified := int64(0)
	if user.Role != role {
		user.Role = role
		modified = 1
	}
	return store.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
}

// MockApartmentStore implements store.ApartmentStore for testing.
type MockApartmentStore struct {
	ListFn          func(ctx context.Context, page, size int64) ([]domain.Apartment, error)
	CountFn         func(ctx context.Context) (int64, error)
	CountByStatusFn func(ctx context.Context, status domain.ApartmentStatus) (int64, error)
	SetStatusFn     func(ctx context.Context, id string, status domain.ApartmentStatus) (store.UpdateResult, error)

	// Data for default implementation
	Apartments []domain.Apartment
	// Statuses records SetStatus writes, keyed by hex ID
	Statuses map[string]domain.ApartmentStatus
}

var _ store.ApartmentStore = (*MockApartmentStore)(nil)

// NewMockApartmentStore creates a new mock store with initialized defaults.
func NewMockApartmentStore() *MockApartmentStore {
	return &MockApartmentStore{Statuses: make(map[string]domain.ApartmentStatus)}
}

func (m *MockApartmentStore) List(ctx context.Context, page, size int64) ([]domain.Apartment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, size)
	}
	if size <= 0 {
		return m.Apartments, nil
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= int64(len(m.Apartments)) {
		return []domain.Apartment{}, nil
	}
	end := start + size
	if end > int64(len(m.Apartments)) {
		end = int64(len(m.Apartments))
	}
	return m.Apartments[start:end], nil
}

func (m *MockApartmentStore) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return int64(len(m.Apartments)), nil
}

func (m *MockApartmentStore) CountByStatus(ctx context.Context, status domain.ApartmentStatus) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	var count int64
	for _, apartment := range m.Apartments {
		if apartment.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *MockApartmentStore) SetStatus(ctx context.Context, id string, status domain.ApartmentStatus) (store.UpdateResult, error) {
	if m.SetStatusFn != nil {
		return m.SetStatusFn(ctx, id, status)
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.UpdateResult{}, store.ErrInvalidID
	}
	m.Statuses[id] = status
	return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// MockAgreementStore implements store.AgreementStore for testing.
type MockAgreementStore struct {
	CreateFn      func(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.Agreement, error)
	ListFn        func(ctx context.Context) ([]domain.Agreement, error)
	SetDecisionFn func(ctx context.Context, id string, status domain.AgreementStatus, acceptDate string) (store.UpdateResult, error)

	// Data for default implementation, keyed by email
	Agreements map[string]*domain.Agreement
}

var _ store.AgreementStore = (*MockAgreementStore)(nil)

// NewMockAgreementStore creates a new mock store with initialized defaults.
func NewMockAgreementStore() *MockAgreementStore {
	return &MockAgreementStore{Agreements: make(map[string]*domain.Agreement)}
}

func (m *MockAgreementStore) Create(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, agreement)
	}
	if _, exists := m.Agreements[agreement.Email]; exists {
		return store.InsertResult{}, store.ErrAgreementExists
	}
	if agreement.ID.IsZero() {
		agreement.ID = primitive.NewObjectID()
	}
	m.Agreements[agreement.Email] = agreement
	return store.InsertResult{InsertedID: agreement.ID}, nil
}

func (m *MockAgreementStore) GetByEmail(ctx context.Context, email string) (*domain.Agreement, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	agreement, exists := m.Agreements[email]
	if !exists {
		return nil, store.ErrAgreementNotFound
	}
	return agreement, nil
}

func (m *MockAgreementStore) List(ctx context.Context) ([]domain.Agreement, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	agreements := make([]domain.Agreement, 0, len(m.Agreements))
	for _, agreement := range m.Agreements {
		agreements = append(agreements, *agreement)
	}
	return agreements, nil
}

func (m *MockAgreementStore) SetDecision(ctx context.Context, id string, status domain.AgreementStatus, acceptDate string) (store.UpdateResult, error) {
	if m.SetDecisionFn != nil {
		return m.SetDecisionFn(ctx, id, status, acceptDate)
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.UpdateResult{}, store.ErrInvalidID
	}
	for _, agreement := range m.Agreements {
		if agreement.ID.Hex() == id {
			agreement.Status = status
			agreement.AcceptDate = acceptDate
			return store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return store.UpdateResult{}, nil
}

// MockCouponStore implements store.CouponStore for testing.
type MockCouponStore struct {
	CreateFn func(ctx context.Context, coupon *domain.Coupon) (store.InsertResult, error)
	ListFn   func(ctx context.Context) ([]domain.Coupon, error)

	Coupons []domain.Coupon
}

var _ store.CouponStore = (*MockCouponStore)(nil)

func (m *MockCouponStore) Create(ctx context.Context, coupon *domain.Coupon) (store.InsertResult, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, coupon)
	}
	coupon.ID = primitive.NewObjectID()
	m.Coupons = append(m.Coupons, *coupon)
	return store.InsertResult{InsertedID: coupon.ID}, nil
}

func (m *MockCouponStore) List(ctx context.Context) ([]domain.Coupon, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Coupons, nil
}

// MockAnnouncementStore implements store.AnnouncementStore for testing.
type MockAnnouncementStore struct {
	CreateFn func(ctx context.Context, announcement *domain.Announcement) (store.InsertResult, error)
	ListFn   func(ctx context.Context) ([]domain.Announcement, error)

	Announcements []domain.Announcement
}

var _ store.AnnouncementStore = (*MockAnnouncementStore)(nil)

func (m *MockAnnouncementStore) Create(ctx context.Context, announcement *domain.Announcement) (store.InsertResult, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, announcement)
	}
	announcement.ID = primitive.NewObjectID()
	m.Announcements = append(m.Announcements, *announcement)
	return store.InsertResult{InsertedID: announcement.ID}, nil
}

func (m *MockAnnouncementStore) List(ctx context.Context) ([]domain.Announcement, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Announcements, nil
}

// MockPaymentStore implements store.PaymentStore for testing.
type MockPaymentStore struct {
	CreateFn      func(ctx context.Context, payment *domain.Payment) (store.InsertResult, error)
	ListByEmailFn func(ctx context.Context, email, monthSearch string) ([]domain.Payment, error)

	Payments []domain.Payment
}

var _ store.PaymentStore = (*MockPaymentStore)(nil)

func (m *MockPaymentStore) Create(ctx context.Context, payment *domain.Payment) (store.InsertResult, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, payment)
	}
	payment.ID = primitive.NewObjectID()
	m.Payments = append(m.Payments, *payment)
	return store.InsertResult{InsertedID: payment.ID}, nil
}

func (m *MockPaymentStore) ListByEmail(ctx context.Context, email, monthSearch string) ([]domain.Payment, error) {
	if m.ListByEmailFn != nil {
		return m.ListByEmailFn(ctx, email, monthSearch)
	}
	payments := []domain.Payment{}
	for _, payment := range m.Payments {
		if payment.Email == email {
			payments = append(payments, payment)
		}
	}
	return payments, nil
}

// MockTransactor implements store.Transactor for testing. The default
// simply runs the function with the same context, which is what the Mongo
// implementation does from the callback's point of view.
type MockTransactor struct {
	WithinTransactionFn func(ctx context.Context, fn func(ctx context.Context) error) error

	// Calls counts how many transactions were started.
	Calls int
}

var _ store.Transactor = (*MockTransactor)(nil)

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.WithinTransactionFn != nil {
		return m.WithinTransactionFn(ctx, fn)
	}
	return fn(ctx)
}

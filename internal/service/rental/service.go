package rental

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skyviewhq/skyview-api/internal/domain"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// CheckApprove is the decision value that turns an application into a
// tenancy. Any other value is a rejection: the agreement is still marked
// checked, but no role or apartment status changes.
const CheckApprove = "approve"

// Decision carries an admin's ruling on a pending agreement.
type Decision struct {
	AgreementID string
	Check       string
	Email       string
	ApartmentID string
	AcceptDate  string
}

// Service is the rental agreement workflow: member applications, admin
// decisions, and voluntary move-outs. It is the only place in the system
// that mutates user roles and apartment availability.
type Service interface {
	// Apply submits a rental application for the agreement's email.
	// Returns store.ErrAgreementExists if the email already holds an
	// agreement record of any status.
	Apply(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error)

	// Decide marks the agreement checked and records the accept date.
	// When the decision is CheckApprove it also promotes the user to
	// member and marks the apartment unavailable, all in one transaction.
	Decide(ctx context.Context, decision Decision) (store.UpdateResult, error)

	// MoveOut ends the tenancy for the email: frees the referenced
	// apartment if an agreement exists, and clears the user's role either
	// way. Calling it again when no agreement exists is a no-op apart
	// from the role write, so the operation is idempotent.
	MoveOut(ctx context.Context, email string) (store.UpdateResult, error)
}

type rentalService struct {
	agreements store.AgreementStore
	users      store.UserStore
	apartments store.ApartmentStore
	tx         store.Transactor
	logger     *slog.Logger
}

// Ensure rentalService implements Service.
var _ Service = (*rentalService)(nil)

// NewService creates the rental workflow service with the given stores and
// transaction runner.
func NewService(
	agreements store.AgreementStore,
	users store.UserStore,
	apartments store.ApartmentStore,
	tx store.Transactor,
	logger *slog.Logger,
) (Service, error) {
	if agreements == nil || users == nil || apartments == nil || tx == nil {
		return nil, errors.New("rental service requires agreement, user, and apartment stores and a transactor")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &rentalService{
		agreements: agreements,
		users:      users,
		apartments: apartments,
		tx:         tx,
		logger:     logger,
	}, nil
}

// Apply validates the application and inserts it with status pending.
// The duplicate check covers agreements of ANY status, so a user whose
// application was rejected (or who moved out) cannot apply again. That
// matches the historical behavior of the system and is preserved
// deliberately; see DESIGN.md.
func (s *rentalService) Apply(ctx context.Context, agreement *domain.Agreement) (store.InsertResult, error) {
	if err := agreement.Validate(); err != nil {
		return store.InsertResult{}, err
	}

	agreement.Status = domain.AgreementPending

	result, err := s.agreements.Create(ctx, agreement)
	if err != nil {
		if errors.Is(err, store.ErrAgreementExists) {
			return store.InsertResult{}, err
		}
		return store.InsertResult{}, fmt.Errorf("failed to submit agreement: %w", err)
	}

	s.logger.Info("agreement submitted",
		"email", agreement.Email,
		"apartment_id", agreement.ApartmentID,
		"agreement_id", result.InsertedID.Hex())

	return result, nil
}

// Decide runs the admin ruling in a single transaction. The agreement is
// marked checked whatever the ruling; approval additionally promotes the
// user and takes the apartment off the market. Rejection performs only the
// status and date update and does not free the email for reapplication.
func (s *rentalService) Decide(ctx context.Context, decision Decision) (store.UpdateResult, error) {
	var result store.UpdateResult

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.agreements.SetDecision(ctx, decision.AgreementID, domain.AgreementChecked, decision.AcceptDate)
		if err != nil {
			return err
		}

		if decision.Check != CheckApprove {
			return nil
		}

		if _, err := s.users.SetRoleByEmail(ctx, decision.Email, domain.RoleMember); err != nil {
			return err
		}
		if _, err := s.apartments.SetStatus(ctx, decision.ApartmentID, domain.ApartmentUnavailable); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return store.UpdateResult{}, err
	}

	s.logger.Info("agreement decided",
		"agreement_id", decision.AgreementID,
		"check", decision.Check,
		"email", decision.Email)

	return result, nil
}

// MoveOut runs the voluntary move-out in a single transaction. The role is
// cleared even when no agreement exists, so repeated calls stay safe.
func (s *rentalService) MoveOut(ctx context.Context, email string) (store.UpdateResult, error) {
	var result store.UpdateResult

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		agreement, err := s.agreements.GetByEmail(ctx, email)
		switch {
		case err == nil:
			if _, err := s.apartments.SetStatus(ctx, agreement.ApartmentID, domain.ApartmentAvailable); err != nil {
				return err
			}
		case errors.Is(err, store.ErrAgreementNotFound):
			// No tenancy on record; still clear the role below.
		default:
			return err
		}

		result, err = s.users.SetRoleByEmail(ctx, email, domain.RoleNone)
		return err
	})
	if err != nil {
		return store.UpdateResult{}, err
	}

	s.logger.Info("user moved out", "email", email)

	return result, nil
}

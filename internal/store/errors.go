package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrUpdateFailed is returned when an update operation fails, for
	// example because the target document does not exist.
	ErrUpdateFailed = errors.New("update failed")

	// ErrTransactionFailed is returned when a multi-document transaction
	// fails to start or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrInvalidID is returned when a supplied document ID cannot be
	// parsed into an ObjectID.
	ErrInvalidID = errors.New("invalid document id")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrApartmentNotFound indicates that the requested apartment does not exist.
	ErrApartmentNotFound = fmt.Errorf("%w: apartment", ErrNotFound)

	// ErrAgreementNotFound indicates that the requested agreement does not exist.
	ErrAgreementNotFound = fmt.Errorf("%w: agreement", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email is already
	// registered.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrAgreementExists indicates that the email already holds an
	// agreement record, whatever its status.
	ErrAgreementExists = fmt.Errorf("%w: agreement", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

package services

import (
	"errors"
	"fmt"

	"ledger/internal/db"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrLimitExceeded      = errors.New("credit limit exceeded")
	ErrContention         = errors.New("storage contention")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Retryable reports whether a later attempt of the same call may succeed.
// Validation, unknown-account, and limit failures are terminal.
func Retryable(err error) bool {
	return errors.Is(err, ErrContention) || errors.Is(err, ErrStorageUnavailable)
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrInvalidTransaction) ||
		errors.Is(err, ErrLimitExceeded) ||
		errors.Is(err, ErrContention) ||
		errors.Is(err, ErrStorageUnavailable)
}

// classifyStorage maps raw storage errors onto the service taxonomy. Domain
// errors pass through untouched so handlers can match them with errors.Is.
func classifyStorage(err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	if db.IsContention(err) {
		return fmt.Errorf("%w: %v", ErrContention, err)
	}
	if db.IsUnavailable(err) {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

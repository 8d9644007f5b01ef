package service

import (
	"errors"
	"fmt"

	"card_ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrNotFound               = errors.New("card not found")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrUnavailable            = errors.New("storage unavailable")
)

const (
	CodeOK                     = "OK"
	CodeInvalidArgument        = "INVALID_ARGUMENT"
	CodeNotFound               = "NOT_FOUND"
	CodeInsufficientBalance    = "INSUFFICIENT_BALANCE"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
	CodeUnavailable            = "UNAVAILABLE"
)

// Code classifies err into one of the ledger error codes. Errors outside the
// taxonomy are reported as UNAVAILABLE.
func Code(err error) string {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrConcurrentModification):
		return CodeConcurrentModification
	default:
		return CodeUnavailable
	}
}

// IsRetryable reports whether a caller may re-read and re-attempt the call
// without any further decision.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentModification)
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// translateStoreError maps storage sentinels onto the ledger taxonomy.
func translateStoreError(err error, cardID uuid.UUID, amount decimal.Decimal) error {
	switch {
	case errors.Is(err, repository.ErrCardNotFound):
		return fmt.Errorf("%w: card %s", ErrNotFound, cardID)
	case errors.Is(err, repository.ErrVersionConflict):
		return fmt.Errorf("%w: card %s, amount %s", ErrConcurrentModification, cardID, amount)
	default:
		return fmt.Errorf("%w: card %s: %w", ErrUnavailable, cardID, err)
	}
}

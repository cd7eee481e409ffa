// Package storeerr classifies database driver errors into the small set of
// kinds the persistence layer surfaces to its callers: constraint violations
// and store unavailability. Absence of a row is not an error anywhere in this
// layer and therefore has no kind here.
package storeerr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrConstraintViolation marks unique, foreign-key, not-null and check
	// violations surfaced by the store.
	ErrConstraintViolation = errors.New("store: constraint violation")

	// ErrStoreUnavailable marks connection, shutdown and timeout failures
	// from the driver.
	ErrStoreUnavailable = errors.New("store: unavailable")
)

// Classify wraps err with the matching sentinel while keeping the original
// error reachable through errors.Is/As. Errors that fit no kind are returned
// unmodified; nothing is retried or swallowed.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		// SQLSTATE class 23: integrity constraint violations.
		case strings.HasPrefix(pgErr.Code, "23"):
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		// Class 08: connection exceptions. 53: insufficient resources.
		// 57: operator intervention (shutdowns, cancellations).
		case strings.HasPrefix(pgErr.Code, "08"),
			strings.HasPrefix(pgErr.Code, "53"),
			strings.HasPrefix(pgErr.Code, "57"):
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return err
}

// IsConstraintViolation reports whether err was classified as a constraint
// violation.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

// IsStoreUnavailable reports whether err was classified as the store being
// unreachable.
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

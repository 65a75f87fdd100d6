package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vadea/vadea-backend/internal/domain"
)

// pgCodes maps SQLSTATE codes to the domain error they surface as.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation: the parent row is gone
	"23514": domain.ErrValidation,    // check_violation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
	"55P03": domain.ErrConflict,      // lock_not_available
}

// MapError wraps err with "<entity> <id>" and, where one applies, the
// matching domain sentinel. Context cancellation passes through unmapped.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	cause := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows), pgxscan.NotFound(err):
		cause = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgCodes[pgErr.Code]; ok {
				cause = mapped
			}
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, cause)
}

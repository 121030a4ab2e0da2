package postgres

import (
	goerrors "errors"

	apperrors "github.com/traveloki-service/internal/pkg/errors"
)

// Postgres error class codes relevant to this schema.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// mapStorageError converts driver errors into the service error taxonomy.
// Integrity failures (bad category id, duplicate email) become client-facing
// errors; everything else is an opaque database failure. Matching on
// SQLState covers both pgx (production) and lib/pq (test suites).
func mapStorageError(err error) *apperrors.AppError {
	var pgErr interface{ SQLState() string }
	if goerrors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case pgUniqueViolation:
			return apperrors.ErrDuplicateEntry
		case pgForeignKeyViolation, pgNotNullViolation, pgCheckViolation:
			return apperrors.ErrConstraintViolation
		}
	}
	return apperrors.ErrDatabaseError
}

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err is not a
// PostgreSQL driver error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyPostgresError maps a driver error onto the package sentinels so
// that the service layer never has to know about SQLSTATE codes.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Class 23 (integrity constraint violations):
//   - 23505 unique_violation → [ErrUniqueViolation]
//   - 23514 check_violation, 23502 not_null_violation,
//     23503 foreign_key_violation → [ErrConstraintViolation]
//
// Any other error is wrapped with fallback.
func classifyPostgresError(err error, fallback error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup, update or delete targets a row
	// that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation is returned when an insert collides with an existing
	// row on a unique column (username, email, token or flight_id). It is
	// returned both by the pre-insert lookup and by the database constraint.
	ErrUniqueViolation = errors.New("record already exists")

	// ErrOwnerMismatch is returned when a post is deleted by someone other
	// than its author.
	ErrOwnerMismatch = errors.New("record belongs to another user")

	// ErrConstraintViolation is returned when a check, not-null or foreign
	// key constraint rejects the written values.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

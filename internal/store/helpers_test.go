package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &DB{DB: db, logger: logger.Nop()}, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func strPtr(s string) *string { return &s }

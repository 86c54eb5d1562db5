package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 4
	connMaxLifetime = 30 * time.Minute
)

// DB is the PostgreSQL connection pool shared by the repositories of one service.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a pgx-backed *sql.DB for cfg and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(connMaxLifetime)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// purgeTable deletes every row of table in a single transaction and returns
// the number of removed rows.
func (db *DB) purgeTable(ctx context.Context, query string) (int64, error) {
	var deleted int64
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		deleted, err = result.RowsAffected()
		return err
	})

	return deleted, err
}

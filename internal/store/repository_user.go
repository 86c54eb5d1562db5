package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, profile updates and token storage
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the server-assigned
// timestamps filled in.
//
// The username/email lookup and the INSERT share one transaction. A match in
// the lookup and a unique_violation raised by the INSERT (a concurrent
// registration) both yield [ErrUniqueViolation].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, userExists, user.Username, user.Email).Scan(&exists); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if exists {
			return ErrUniqueViolation
		}

		row := tx.QueryRowContext(ctx, createUser,
			user.ID, user.Username, user.Email, user.PhoneNumber, user.DNI, user.FullName,
			user.PasswordHash, user.Salt, string(user.Status),
		)
		if err := row.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
			return classifyPostgresError(err, ErrExecutingStatement)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUniqueViolation) {
			log.Warn().Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("username or email already taken")
		} else {
			log.Err(err).Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("failed to create user")
		}
		return models.User{}, err
	}

	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	return user, nil
}

// FindUserByUsername returns the account registered under username, or
// [ErrNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByToken returns the account currently holding token, or
// [ErrNotFound]. Expiry is not checked here.
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByToken", findUserByToken, token)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.DB.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("user not found")
		return models.User{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// SaveToken stores token as the only active token of the user, replacing
// any previous one.
func (r *userRepository) SaveToken(ctx context.Context, userID uuid.UUID, token string, expireAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, saveUserToken, userID, token, expireAt)
	if err != nil {
		log.Err(err).Str("func", "userRepository.SaveToken").Str("user_id", userID.String()).Msg("failed to save token")
		return classifyPostgresError(err, ErrExecutingStatement)
	}

	return requireAffected(result)
}

// UpdateUser writes the non-nil fields of update. Returns [ErrNotFound] when
// no account has the given id.
func (r *userRepository) UpdateUser(ctx context.Context, id uuid.UUID, update models.UpdateUserRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Str("user_id", id.String()).Msg("failed to update user")
		return classifyPostgresError(err, ErrExecutingStatement)
	}

	return requireAffected(result)
}

// Purge deletes every account.
func (r *userRepository) Purge(ctx context.Context) (int64, error) {
	deleted, err := r.purgeTable(ctx, purgeUsers)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userRepository.Purge").Msg("failed to purge users")
		return 0, err
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var status string

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PhoneNumber,
		&user.DNI,
		&user.FullName,
		&user.PasswordHash,
		&user.Salt,
		&user.Token,
		&user.ExpireAt,
		&status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Status = models.UserStatus(status)
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()
	if user.ExpireAt != nil {
		expireAt := user.ExpireAt.UTC()
		user.ExpireAt = &expireAt
	}

	return user, nil
}

// requireAffected turns a zero-row UPDATE or DELETE into [ErrNotFound].
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

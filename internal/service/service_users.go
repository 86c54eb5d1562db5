package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/store"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/internal/validators"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

// userService is the concrete implementation of UserService.
// Passwords are stored as argon2id hashes with a per-user salt; tokens are
// opaque random values kept next to the account with their expiry.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock used for token issuance and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository. The returned service is safe for concurrent use.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// CreateUser registers a new account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided (wrapping a *validators.ValidationError) when a
//     required field is missing or too long.
//   - ErrConflict wrapping ErrDuplicateUser when the username or email is taken.
func (u *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("error generating salt: %w", err)
	}

	user := models.User{
		ID:           u.ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: utils.HashPassword(req.Password, salt),
		Salt:         salt,
		FullName:     req.FullName,
		DNI:          req.DNI,
		PhoneNumber:  req.PhoneNumber,
		Status:       models.StatusVerified,
	}

	created, err := u.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUniqueViolation) {
		return models.User{}, fmt.Errorf("%w: %w", ErrConflict, ErrDuplicateUser)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.ID.String()).Msg("user created")
	return created, nil
}

// IssueToken authenticates the user by username and password and replaces
// any previous token with a fresh one.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (u *userService) IssueToken(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("username", req.Username).Msg("login attempt for unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if user.Salt == "" || user.PasswordHash == "" || !utils.VerifyPassword(req.Password, user.Salt, user.PasswordHash) {
		log.Debug().Str("user_id", user.ID.String()).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	value, err := utils.GenerateToken()
	if err != nil {
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}

	token := models.Token{
		UserID:   user.ID,
		Value:    value,
		ExpireAt: u.now().UTC().Add(u.tokenDuration),
	}

	if err = u.userRepository.SaveToken(ctx, token.UserID, token.Value, token.ExpireAt); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Token{}, ErrInvalidCredentials
		}
		return models.Token{}, fmt.Errorf("saving token failed: %w", err)
	}

	return token, nil
}

// ValidateToken implements [TokenValidator] against the local users table.
// A token whose expiry equals the current instant is already expired.
func (u *userService) ValidateToken(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrTokenMissing
	}
	if !utils.IsTokenFormat(token) {
		return models.Identity{}, ErrTokenInvalid
	}

	user, err := u.userRepository.FindUserByToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return models.Identity{}, ErrTokenInvalid
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("user search by token failed: %w", err)
	}

	if !user.HasActiveToken(u.now()) {
		return models.Identity{}, ErrTokenIsExpired
	}

	return user.Identity(), nil
}

// UpdateUser writes the supplied profile fields of user id.
//
// Returns ErrNoChanges (wrapped in ErrInvalidDataProvided) when req carries
// nothing to update and ErrNotFound when the user does not exist.
func (u *userService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) error {
	if err := u.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !req.HasChanges() {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrNoChanges)
	}

	err := u.userRepository.UpdateUser(ctx, id, req)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("user update failed: %w", err)
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/mock"
	"github.com/MKhiriev/go-travel-board/internal/store"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/internal/validators"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// newTestUserSvc: хелпер для создания userService с моком репозитория
func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (*userService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, validators.NewRequestValidator(), config.App{TokenDuration: time.Hour}, logger.Nop()).(*userService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	salt, err := utils.GenerateSalt()
	require.NoError(t, err)
	return models.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		Salt:         salt,
		PasswordHash: utils.HashPassword(password, salt),
		Status:       models.StatusVerified,
	}
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	fullName := "Alice Liddell"
	req := models.CreateUserRequest{Username: "alice", Password: "s3cret", Email: "alice@example.com", FullName: &fullName}

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, uuid.Nil, u.ID)
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, models.StatusVerified, u.Status)
			assert.Len(t, u.Salt, 32)
			assert.NotEqual(t, req.Password, u.PasswordHash)
			assert.True(t, utils.VerifyPassword(req.Password, u.Salt, u.PasswordHash))
			assert.Equal(t, &fullName, u.FullName)
			u.CreatedAt = fixedNow
			return u, nil
		},
	)

	got, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, got.CreatedAt)
}

func TestUserService_CreateUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Username: "alice"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "password")
	assert.Contains(t, vErr.Fields, "email")
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUniqueViolation)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Username: "alice", Password: "p", Email: "a@b.c"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestUserService_CreateUser_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingStatement)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Username: "alice", Password: "p", Email: "a@b.c"})

	assert.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrConflict)
}

// ── IssueToken ───────────────────────────────────────────────────────────────

func TestUserService_IssueToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	user := storedUser(t, "s3cret")

	gomock.InOrder(
		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(user, nil),
		repo.EXPECT().SaveToken(ctx, user.ID, gomock.Any(), fixedNow.Add(time.Hour)).Return(nil),
	)

	token, err := svc.IssueToken(ctx, models.AuthRequest{Username: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, token.UserID)
	assert.Len(t, token.Value, 64)
	assert.Equal(t, fixedNow.Add(time.Hour), token.ExpireAt)
}

func TestUserService_IssueToken_FreshTokenEachTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)
	user := storedUser(t, "s3cret")

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(user, nil).Times(2)
	repo.EXPECT().SaveToken(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := svc.IssueToken(context.Background(), models.AuthRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	second, err := svc.IssueToken(context.Background(), models.AuthRequest{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Value, second.Value)
}

func TestUserService_IssueToken_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *mock.MockUserRepository, user models.User)
		pass  string
	}{
		{
			name: "unknown user",
			setup: func(repo *mock.MockUserRepository, _ models.User) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrNotFound)
			},
			pass: "s3cret",
		},
		{
			name: "wrong password",
			setup: func(repo *mock.MockUserRepository, user models.User) {
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(user, nil)
			},
			pass: "wrong",
		},
		{
			name: "missing salt",
			setup: func(repo *mock.MockUserRepository, user models.User) {
				user.Salt = ""
				repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(user, nil)
			},
			pass: "s3cret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestUserSvc(t, ctrl)
			tt.setup(repo, storedUser(t, "s3cret"))

			_, err := svc.IssueToken(context.Background(), models.AuthRequest{Username: "alice", Password: tt.pass})

			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestUserService_IssueToken_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.IssueToken(context.Background(), models.AuthRequest{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_IssueToken_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestUserSvc(t, ctrl)
	user := storedUser(t, "s3cret")

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(user, nil)
	repo.EXPECT().SaveToken(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.IssueToken(context.Background(), models.AuthRequest{Username: "alice", Password: "s3cret"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving token failed")
}

// ── ValidateToken ────────────────────────────────────────────────────────────

func TestUserService_ValidateToken(t *testing.T) {
	token := strings.Repeat("ab", 32)
	future := fixedNow.Add(time.Minute)
	past := fixedNow.Add(-time.Minute)
	exact := fixedNow

	tests := []struct {
		name     string
		token    string
		noLookup bool
		repoUser models.User
		repoErr  error
		wantErr  error
	}{
		{name: "active", token: token, repoUser: models.User{Username: "alice", Token: &token, ExpireAt: &future}},
		{name: "expired", token: token, repoUser: models.User{Token: &token, ExpireAt: &past}, wantErr: ErrTokenIsExpired},
		{name: "expires now", token: token, repoUser: models.User{Token: &token, ExpireAt: &exact}, wantErr: ErrTokenIsExpired},
		{name: "unknown", token: token, repoErr: store.ErrNotFound, wantErr: ErrTokenInvalid},
		{name: "empty", token: "", noLookup: true, wantErr: ErrTokenMissing},
		{name: "wrong length", token: "abc", noLookup: true, wantErr: ErrTokenInvalid},
		{name: "nul bytes", token: strings.Repeat("\x00", 64), noLookup: true, wantErr: ErrTokenInvalid},
		{name: "invalid utf-8", token: strings.Repeat("\xff", 64), noLookup: true, wantErr: ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestUserSvc(t, ctrl)
			if !tt.noLookup {
				repo.EXPECT().FindUserByToken(gomock.Any(), tt.token).Return(tt.repoUser, tt.repoErr)
			}

			identity, err := svc.ValidateToken(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.repoUser.Identity(), identity)
		})
	}
}

// ── UpdateUser ───────────────────────────────────────────────────────────────

func TestUserService_UpdateUser(t *testing.T) {
	id := uuid.New()
	phone := "600123123"
	status := models.StatusNotVerified
	badStatus := models.UserStatus("BANNED")

	tests := []struct {
		name    string
		req     models.UpdateUserRequest
		repoErr error
		callDB  bool
		wantErr error
	}{
		{name: "ok", req: models.UpdateUserRequest{PhoneNumber: &phone, Status: &status}, callDB: true},
		{name: "no changes", req: models.UpdateUserRequest{}, wantErr: ErrNoChanges},
		{name: "bad status", req: models.UpdateUserRequest{Status: &badStatus}, wantErr: ErrInvalidDataProvided},
		{name: "missing user", req: models.UpdateUserRequest{PhoneNumber: &phone}, callDB: true, repoErr: store.ErrNotFound, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestUserSvc(t, ctrl)
			if tt.callDB {
				repo.EXPECT().UpdateUser(gomock.Any(), id, tt.req).Return(tt.repoErr)
			}

			err := svc.UpdateUser(context.Background(), id, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/service"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ---- Mock: UserService ----

type mockUserService struct {
	createUserFn    func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	issueTokenFn    func(ctx context.Context, req models.AuthRequest) (models.Token, error)
	updateUserFn    func(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) error
	validateTokenFn func(ctx context.Context, token string) (models.Identity, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.createUserFn(ctx, req)
}

func (m *mockUserService) IssueToken(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	return m.issueTokenFn(ctx, req)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) error {
	return m.updateUserFn(ctx, id, req)
}

func (m *mockUserService) ValidateToken(ctx context.Context, token string) (models.Identity, error) {
	return m.validateTokenFn(ctx, token)
}

// ---- Mock: TokenValidator ----

type mockTokenValidator struct {
	validateFn func(ctx context.Context, token string) (models.Identity, error)
	calls      int
}

func (m *mockTokenValidator) ValidateToken(ctx context.Context, token string) (models.Identity, error) {
	m.calls++
	return m.validateFn(ctx, token)
}

// acceptToken returns a validator that accepts exactly token as identity.
func acceptToken(token string, identity models.Identity) *mockTokenValidator {
	return &mockTokenValidator{validateFn: func(_ context.Context, got string) (models.Identity, error) {
		if got != token {
			return models.Identity{}, service.ErrTokenInvalid
		}
		return identity, nil
	}}
}

// ---- Mock: RouteService ----

type mockRouteService struct {
	createRouteFn func(ctx context.Context, req models.CreateRouteRequest) (models.Route, error)
	listRoutesFn  func(ctx context.Context, flightID *string) ([]models.Route, error)
	getRouteFn    func(ctx context.Context, id uuid.UUID) (models.Route, error)
	deleteRouteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRouteService) CreateRoute(ctx context.Context, req models.CreateRouteRequest) (models.Route, error) {
	return m.createRouteFn(ctx, req)
}

func (m *mockRouteService) ListRoutes(ctx context.Context, flightID *string) ([]models.Route, error) {
	return m.listRoutesFn(ctx, flightID)
}

func (m *mockRouteService) GetRoute(ctx context.Context, id uuid.UUID) (models.Route, error) {
	return m.getRouteFn(ctx, id)
}

func (m *mockRouteService) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return m.deleteRouteFn(ctx, id)
}

// ---- Mock: PostService ----

type mockPostService struct {
	createPostFn func(ctx context.Context, ownerID uuid.UUID, req models.CreatePostRequest) (models.Post, error)
	listPostsFn  func(ctx context.Context, callerID uuid.UUID, query models.PostQuery) ([]models.Post, error)
	getPostFn    func(ctx context.Context, id uuid.UUID) (models.Post, error)
	deletePostFn func(ctx context.Context, id, callerID uuid.UUID) error
}

func (m *mockPostService) CreatePost(ctx context.Context, ownerID uuid.UUID, req models.CreatePostRequest) (models.Post, error) {
	return m.createPostFn(ctx, ownerID, req)
}

func (m *mockPostService) ListPosts(ctx context.Context, callerID uuid.UUID, query models.PostQuery) ([]models.Post, error) {
	return m.listPostsFn(ctx, callerID, query)
}

func (m *mockPostService) GetPost(ctx context.Context, id uuid.UUID) (models.Post, error) {
	return m.getPostFn(ctx, id)
}

func (m *mockPostService) DeletePost(ctx context.Context, id, callerID uuid.UUID) error {
	return m.deletePostFn(ctx, id, callerID)
}

// ---- Mock: ResetService ----

type mockResetService struct {
	deleted int64
	err     error
	calls   int
}

func (m *mockResetService) Reset(_ context.Context) (int64, error) {
	m.calls++
	return m.deleted, m.err
}

// ---- Helpers ----

func newTestHandler(svc config.Service, app config.App, services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return &Handler{services: services, service: svc, app: app, logger: logger.Nop()}
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

// withIdentity emulates a request that already passed the auth middleware.
func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	return r.WithContext(utils.WithIdentity(r.Context(), identity))
}

// withURLParam sets a chi URL parameter so handlers can be called directly.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody decodes a JSON response body into T.
func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/service"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(router http.Handler, method, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestInit_PicksRouterByService(t *testing.T) {
	tests := []struct {
		svc         config.Service
		pingPath    string
		wantType    string
		wantPayload string
	}{
		{svc: config.ServiceUsers, pingPath: "/users/ping", wantType: "application/json", wantPayload: `{"message":"users service is running"}`},
		{svc: config.ServicePosts, pingPath: "/posts/ping", wantType: "application/json", wantPayload: `{"message":"posts service is running"}`},
		{svc: config.ServiceRoutes, pingPath: "/routes/ping", wantType: "text/plain; charset=utf-8", wantPayload: "pong"},
	}

	for _, tt := range tests {
		t.Run(tt.svc.String(), func(t *testing.T) {
			router := newTestHandler(tt.svc, config.App{}, nil).Init()

			rr := serve(router, http.MethodGet, tt.pingPath, "")

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantType, rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantPayload, strings.TrimSpace(rr.Body.String()))
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestRouter_UnknownPathAndMethod(t *testing.T) {
	router := newTestHandler(config.ServiceUsers, config.App{}, nil).InitUsers()

	rr := serve(router, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"resource not found"}`, rr.Body.String())

	rr = serve(router, http.MethodDelete, "/users/ping", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"error":"method not allowed"}`, rr.Body.String())
}

func TestRouter_ResetDisabledByDefault(t *testing.T) {
	for _, svc := range []config.Service{config.ServiceUsers, config.ServiceRoutes, config.ServicePosts} {
		t.Run(svc.String(), func(t *testing.T) {
			reset := &mockResetService{}
			router := newTestHandler(svc, config.App{}, &service.Services{ResetService: reset}).Init()

			rr := serve(router, http.MethodPost, "/"+svc.String()+"/reset", "")

			assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, rr.Code)
			assert.Zero(t, reset.calls)
		})
	}
}

func TestRouter_ResetEnabled(t *testing.T) {
	tests := []struct {
		svc      config.Service
		wantBody string
	}{
		{svc: config.ServiceUsers, wantBody: `{"message":"database reset successfully"}`},
		{svc: config.ServiceRoutes, wantBody: `{"msg":"all data deleted"}`},
		{svc: config.ServicePosts, wantBody: `{"msg":"all data deleted"}`},
	}

	for _, tt := range tests {
		t.Run(tt.svc.String(), func(t *testing.T) {
			reset := &mockResetService{deleted: 2}
			router := newTestHandler(tt.svc, config.App{ResetEnabled: true}, &service.Services{ResetService: reset}).Init()

			rr := serve(router, http.MethodPost, "/"+tt.svc.String()+"/reset", "")

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, 1, reset.calls)
		})
	}
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	identity := models.Identity{ID: uuid.New(), Username: "alice"}
	validator := acceptToken("good", identity)

	routeSvc := &mockRouteService{
		listRoutesFn: func(_ context.Context, _ *string) ([]models.Route, error) { return []models.Route{}, nil },
	}
	postSvc := &mockPostService{
		listPostsFn: func(_ context.Context, callerID uuid.UUID, _ models.PostQuery) ([]models.Post, error) {
			assert.Equal(t, identity.ID, callerID)
			return []models.Post{}, nil
		},
	}
	services := &service.Services{RouteService: routeSvc, PostService: postSvc, TokenValidator: validator}

	tests := []struct {
		name       string
		svc        config.Service
		app        config.App
		target     string
		header     string
		wantStatus int
	}{
		{name: "posts with token", svc: config.ServicePosts, target: "/posts", header: "Bearer good", wantStatus: http.StatusOK},
		{name: "posts without token", svc: config.ServicePosts, target: "/posts", wantStatus: http.StatusForbidden},
		{name: "posts bad token", svc: config.ServicePosts, target: "/posts", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "routes validate bad token", svc: config.ServiceRoutes, target: "/routes", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "routes validate with token", svc: config.ServiceRoutes, target: "/routes", header: "Bearer good", wantStatus: http.StatusOK},
		{name: "routes presence any header", svc: config.ServiceRoutes, app: config.App{RoutesAuthMode: config.RoutesAuthPresence}, target: "/routes", header: "anything", wantStatus: http.StatusOK},
		{name: "routes presence no header", svc: config.ServiceRoutes, app: config.App{RoutesAuthMode: config.RoutesAuthPresence}, target: "/routes", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(tt.svc, tt.app, services).Init()

			rr := serve(router, http.MethodGet, tt.target, tt.header)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRouter_UsersMeAndPatchGuard(t *testing.T) {
	identity := models.Identity{ID: uuid.New(), Username: "alice"}
	userSvc := &mockUserService{
		validateTokenFn: acceptToken("good", identity).validateFn,
		updateUserFn:    func(_ context.Context, _ uuid.UUID, _ models.UpdateUserRequest) error { return nil },
	}
	services := &service.Services{UserService: userSvc, TokenValidator: userSvc}

	t.Run("me", func(t *testing.T) {
		router := newTestHandler(config.ServiceUsers, config.App{}, services).Init()

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/users/me", "Bearer good").Code)
		assert.Equal(t, http.StatusForbidden, serve(router, http.MethodGet, "/users/me", "").Code)
		assert.Equal(t, http.StatusForbidden, serve(router, http.MethodGet, "/users/me", "Token good").Code)
		assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/users/me", "Bearer bad").Code)
	})

	t.Run("patch requires token by default", func(t *testing.T) {
		router := newTestHandler(config.ServiceUsers, config.App{}, services).Init()

		req := httptest.NewRequest(http.MethodPatch, "/users/"+identity.ID.String(), strings.NewReader(`{"dni":"1"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)

		req = httptest.NewRequest(http.MethodPatch, "/users/"+identity.ID.String(), strings.NewReader(`{"dni":"1"}`))
		req.Header.Set("Authorization", "Bearer good")
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("patch anonymous when allowed", func(t *testing.T) {
		router := newTestHandler(config.ServiceUsers, config.App{AllowAnonymousUserUpdate: true}, services).Init()

		req := httptest.NewRequest(http.MethodPatch, "/users/"+uuid.NewString(), strings.NewReader(`{"dni":"1"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

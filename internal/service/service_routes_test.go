package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/mock"
	"github.com/MKhiriev/go-travel-board/internal/store"
	"github.com/MKhiriev/go-travel-board/internal/validators"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouteSvc(t *testing.T, ctrl *gomock.Controller) (*routeService, *mock.MockRouteRepository) {
	t.Helper()
	repo := mock.NewMockRouteRepository(ctrl)
	svc := NewRouteService(repo, validators.NewRequestValidator(), logger.Nop()).(*routeService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func validRouteRequest() models.CreateRouteRequest {
	bagCost := 25
	return models.CreateRouteRequest{
		FlightID:           "IB6841",
		SourceAirportCode:  "MAD",
		SourceCountry:      "Spain",
		DestinyAirportCode: "EZE",
		DestinyCountry:     "Argentina",
		BagCost:            &bagCost,
		PlannedStartDate:   "2026-06-01T10:00:00Z",
		PlannedEndDate:     "2026-06-01T22:30:00",
	}
}

func TestRouteService_CreateRoute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestRouteSvc(t, ctrl)

	repo.EXPECT().CreateRoute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Route) (models.Route, error) {
			assert.NotEqual(t, uuid.Nil, r.ID)
			assert.Equal(t, "IB6841", r.FlightID)
			assert.Equal(t, 25, r.BagCost)
			assert.Equal(t, time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC), r.PlannedStartDate)
			assert.Equal(t, time.Date(2026, 6, 1, 22, 30, 0, 0, time.UTC), r.PlannedEndDate)
			r.CreatedAt = fixedNow
			return r, nil
		},
	)

	got, err := svc.CreateRoute(context.Background(), validRouteRequest())
	require.NoError(t, err)
	assert.Equal(t, fixedNow, got.CreatedAt)
}

func TestRouteService_CreateRoute_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateRouteRequest)
		wantErr error
	}{
		{name: "missing flight", mutate: func(r *models.CreateRouteRequest) { r.FlightID = "" }, wantErr: ErrInvalidDataProvided},
		{name: "missing bag cost", mutate: func(r *models.CreateRouteRequest) { r.BagCost = nil }, wantErr: ErrInvalidDataProvided},
		{name: "bad start date", mutate: func(r *models.CreateRouteRequest) { r.PlannedStartDate = "tomorrow" }, wantErr: ErrInvalidDataProvided},
		{name: "start equals end", mutate: func(r *models.CreateRouteRequest) { r.PlannedEndDate = r.PlannedStartDate }, wantErr: ErrConflict},
		{name: "start after end", mutate: func(r *models.CreateRouteRequest) { r.PlannedEndDate = "2026-05-31T10:00:00Z" }, wantErr: ErrConflict},
		{name: "start in the past", mutate: func(r *models.CreateRouteRequest) { r.PlannedStartDate = "2026-04-01T10:00:00Z" }, wantErr: ErrInvalidDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestRouteSvc(t, ctrl)
			req := validRouteRequest()
			tt.mutate(&req)

			_, err := svc.CreateRoute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRouteService_CreateRoute_BadDateDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestRouteSvc(t, ctrl)
	req := validRouteRequest()
	req.PlannedEndDate = "not a date"

	_, err := svc.CreateRoute(context.Background(), req)

	var vErr *validators.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, map[string]string{"plannedEndDate": "timestamp"}, vErr.Fields)
}

func TestRouteService_CreateRoute_DuplicateFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestRouteSvc(t, ctrl)

	repo.EXPECT().CreateRoute(gomock.Any(), gomock.Any()).Return(models.Route{}, store.ErrUniqueViolation)

	_, err := svc.CreateRoute(context.Background(), validRouteRequest())

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrDuplicateFlight)
}

func TestRouteService_ListRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestRouteSvc(t, ctrl)
	flight := "IB6841"
	want := []models.Route{{ID: uuid.New(), FlightID: flight}}

	repo.EXPECT().ListRoutes(gomock.Any(), &flight).Return(want, nil)

	got, err := svc.ListRoutes(context.Background(), &flight)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRouteService_GetRoute(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestRouteSvc(t, ctrl)
		repo.EXPECT().GetRoute(gomock.Any(), id).Return(models.Route{ID: id}, nil)

		got, err := svc.GetRoute(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestRouteSvc(t, ctrl)
		repo.EXPECT().GetRoute(gomock.Any(), id).Return(models.Route{}, store.ErrNotFound)

		_, err := svc.GetRoute(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRouteService_DeleteRoute(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestRouteSvc(t, ctrl)
		repo.EXPECT().DeleteRoute(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.DeleteRoute(context.Background(), id))
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestRouteSvc(t, ctrl)
		repo.EXPECT().DeleteRoute(gomock.Any(), id).Return(store.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteRoute(context.Background(), id), ErrNotFound)
	})
}

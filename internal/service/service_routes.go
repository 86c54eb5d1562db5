package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/store"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/internal/validators"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

type routeService struct {
	routeRepository store.RouteRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewRouteService(routeRepository store.RouteRepository, validator validators.Validator, logger *logger.Logger) RouteService {
	return &routeService{
		routeRepository: routeRepository,
		validator:       validator,
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

// CreateRoute validates and stores a new route.
//
// Missing fields and unparseable dates yield ErrInvalidDataProvided. A
// duplicate flight, a start not strictly before the end and a start in the
// past yield ErrConflict.
func (r *routeService) CreateRoute(ctx context.Context, req models.CreateRouteRequest) (models.Route, error) {
	if err := r.validator.Validate(ctx, req); err != nil {
		return models.Route{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	start, startErr := models.ParseTimestamp(req.PlannedStartDate)
	end, endErr := models.ParseTimestamp(req.PlannedEndDate)
	if startErr != nil || endErr != nil {
		details := make(map[string]string, 2)
		if startErr != nil {
			details["plannedStartDate"] = "timestamp"
		}
		if endErr != nil {
			details["plannedEndDate"] = "timestamp"
		}
		return models.Route{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, &validators.ValidationError{Fields: details})
	}

	if !start.Before(end) || start.Before(r.now()) {
		logger.FromContext(ctx).Debug().
			Time("start", start).
			Time("end", end).
			Msg("route dates rejected")
		return models.Route{}, fmt.Errorf("%w: %w", ErrConflict, ErrInvalidDates)
	}

	route := models.Route{
		ID:                 r.ids.Generate(),
		FlightID:           req.FlightID,
		SourceAirportCode:  req.SourceAirportCode,
		SourceCountry:      req.SourceCountry,
		DestinyAirportCode: req.DestinyAirportCode,
		DestinyCountry:     req.DestinyCountry,
		BagCost:            *req.BagCost,
		PlannedStartDate:   start,
		PlannedEndDate:     end,
	}

	created, err := r.routeRepository.CreateRoute(ctx, route)
	if errors.Is(err, store.ErrUniqueViolation) {
		return models.Route{}, fmt.Errorf("%w: %w", ErrConflict, ErrDuplicateFlight)
	}
	if err != nil {
		return models.Route{}, fmt.Errorf("route creation ended with error: %w", err)
	}

	return created, nil
}

func (r *routeService) ListRoutes(ctx context.Context, flightID *string) ([]models.Route, error) {
	routes, err := r.routeRepository.ListRoutes(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("listing routes failed: %w", err)
	}
	return routes, nil
}

func (r *routeService) GetRoute(ctx context.Context, id uuid.UUID) (models.Route, error) {
	route, err := r.routeRepository.GetRoute(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Route{}, ErrNotFound
	}
	if err != nil {
		return models.Route{}, fmt.Errorf("route search failed: %w", err)
	}
	return route, nil
}

func (r *routeService) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	err := r.routeRepository.DeleteRoute(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("route deletion failed: %w", err)
	}
	return nil
}

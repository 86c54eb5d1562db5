package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

// routeRepository is the PostgreSQL-backed implementation of [RouteRepository].
type routeRepository struct {
	*DB
	logger *logger.Logger
}

func NewRouteRepository(db *DB, logger *logger.Logger) RouteRepository {
	logger.Debug().Msg("creating route repository")
	return &routeRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateRoute inserts route unless its flight id is already taken, in which
// case [ErrUniqueViolation] is returned.
func (r *routeRepository) CreateRoute(ctx context.Context, route models.Route) (models.Route, error) {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, routeExists, route.FlightID).Scan(&exists); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if exists {
			return ErrUniqueViolation
		}

		row := tx.QueryRowContext(ctx, createRoute,
			route.ID, route.FlightID,
			route.SourceAirportCode, route.SourceCountry,
			route.DestinyAirportCode, route.DestinyCountry,
			route.BagCost, route.PlannedStartDate, route.PlannedEndDate,
		)
		if err := row.Scan(&route.CreatedAt, &route.UpdatedAt); err != nil {
			return classifyPostgresError(err, ErrExecutingStatement)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUniqueViolation) {
			log.Warn().Str("func", "routeRepository.CreateRoute").Str("flight_id", route.FlightID).Msg("flight already has a route")
		} else {
			log.Err(err).Str("func", "routeRepository.CreateRoute").Str("flight_id", route.FlightID).Msg("failed to create route")
		}
		return models.Route{}, err
	}

	route.CreatedAt = route.CreatedAt.UTC()
	route.UpdatedAt = route.UpdatedAt.UTC()
	return route, nil
}

// ListRoutes returns all routes, or only those of flightID when it is non-nil.
// The result is never nil.
func (r *routeRepository) ListRoutes(ctx context.Context, flightID *string) ([]models.Route, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRoutesQuery(flightID)
	if err != nil {
		log.Err(err).Str("func", "routeRepository.ListRoutes").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "routeRepository.ListRoutes").Msg("failed to execute query for listing routes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	routes := make([]models.Route, 0, 16)
	for rows.Next() {
		route, scanErr := scanRoute(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "routeRepository.ListRoutes").Msg("failed to scan route row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		routes = append(routes, route)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "routeRepository.ListRoutes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return routes, nil
}

// GetRoute returns the route with the given id, or [ErrNotFound].
func (r *routeRepository) GetRoute(ctx context.Context, id uuid.UUID) (models.Route, error) {
	log := logger.FromContext(ctx)

	route, err := scanRoute(r.DB.QueryRowContext(ctx, getRoute, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Route{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "routeRepository.GetRoute").Str("route_id", id.String()).Msg("failed to query route")
		return models.Route{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return route, nil
}

// DeleteRoute removes the route with the given id, or returns [ErrNotFound].
func (r *routeRepository) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteRoute, id)
	if err != nil {
		log.Err(err).Str("func", "routeRepository.DeleteRoute").Str("route_id", id.String()).Msg("failed to delete route")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// Purge deletes every route.
func (r *routeRepository) Purge(ctx context.Context) (int64, error) {
	deleted, err := r.purgeTable(ctx, purgeRoutes)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "routeRepository.Purge").Msg("failed to purge routes")
		return 0, err
	}

	return deleted, nil
}

func scanRoute(row rowScanner) (models.Route, error) {
	var route models.Route

	err := row.Scan(
		&route.ID,
		&route.FlightID,
		&route.SourceAirportCode,
		&route.SourceCountry,
		&route.DestinyAirportCode,
		&route.DestinyCountry,
		&route.BagCost,
		&route.PlannedStartDate,
		&route.PlannedEndDate,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return models.Route{}, err
	}

	route.PlannedStartDate = route.PlannedStartDate.UTC()
	route.PlannedEndDate = route.PlannedEndDate.UTC()
	route.CreatedAt = route.CreatedAt.UTC()
	route.UpdatedAt = route.UpdatedAt.UTC()

	return route, nil
}

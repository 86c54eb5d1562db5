package store

import (
	"fmt"

	"github.com/MKhiriev/go-travel-board/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = `id, username, email, phone_number, dni, full_name, password, salt, token, expire_at, status, created_at, updated_at`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2);`

	createUser = `INSERT INTO users (id, username, email, phone_number, dni, full_name, password, salt, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at;`

	findUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	findUserByToken    = `SELECT ` + userColumns + ` FROM users WHERE token = $1;`

	saveUserToken = `UPDATE users
		SET token = $2, expire_at = $3, updated_at = NOW()
		WHERE id = $1;`

	purgeUsers = `DELETE FROM users;`
)

const (
	routeColumns = `id, flight_id, source_airport_code, source_country, destiny_airport_code, destiny_country, bag_cost, planned_start_date, planned_end_date, created_at, updated_at`

	routeExists = `SELECT EXISTS (SELECT 1 FROM routes WHERE flight_id = $1);`

	createRoute = `INSERT INTO routes (id, flight_id, source_airport_code, source_country, destiny_airport_code, destiny_country, bag_cost, planned_start_date, planned_end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at;`

	getRoute = `SELECT ` + routeColumns + ` FROM routes WHERE id = $1;`

	deleteRoute = `DELETE FROM routes WHERE id = $1;`

	purgeRoutes = `DELETE FROM routes;`
)

const (
	postColumns = `id, route_id, user_id, expire_at, created_at`

	createPost = `INSERT INTO posts (id, route_id, user_id, expire_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;`

	getPost = `SELECT ` + postColumns + ` FROM posts WHERE id = $1;`

	lockPostOwner = `SELECT user_id FROM posts WHERE id = $1 FOR UPDATE;`

	deletePost = `DELETE FROM posts WHERE id = $1;`

	purgePosts = `DELETE FROM posts;`
)

// buildUpdateUserQuery builds an UPDATE that writes only the non-nil fields
// of update and always refreshes updated_at.
func buildUpdateUserQuery(id uuid.UUID, update models.UpdateUserRequest) (string, []any, error) {
	builder := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
	}
	if update.PhoneNumber != nil {
		builder = builder.Set("phone_number", *update.PhoneNumber)
	}
	if update.DNI != nil {
		builder = builder.Set("dni", *update.DNI)
	}
	if update.Status != nil {
		builder = builder.Set("status", string(*update.Status))
	}

	query, args, err := builder.Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListRoutesQuery selects every route, or only those of one flight.
func buildListRoutesQuery(flightID *string) (string, []any, error) {
	builder := psql.Select(routeColumns).From("routes").OrderBy("created_at", "id")

	if flightID != nil {
		builder = builder.Where(sq.Eq{"flight_id": *flightID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListPostsQuery ANDs together the conditions present in filter.
// Identifiers are bound as strings: squirrel expands array values such as
// uuid.UUID into IN lists.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	builder := psql.Select(postColumns).From("posts").OrderBy("created_at", "id")

	if filter.Expired != nil {
		if *filter.Expired {
			builder = builder.Where(sq.Lt{"expire_at": filter.Now})
		} else {
			builder = builder.Where(sq.GtOrEq{"expire_at": filter.Now})
		}
	}
	if filter.RouteID != nil {
		builder = builder.Where(sq.Eq{"route_id": filter.RouteID.String()})
	}
	if filter.OwnerID != nil {
		builder = builder.Where(sq.Eq{"user_id": filter.OwnerID.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

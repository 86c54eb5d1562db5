// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// Service identifies which of the three binaries is being configured.
// Defaults and validation rules differ per service.
type Service string

const (
	ServiceUsers  Service = "users"
	ServiceRoutes Service = "routes"
	ServicePosts  Service = "posts"
)

// String returns the service name ("users", "routes" or "posts").
func (s Service) String() string {
	return string(s)
}

// Role returns the logger role of the service, e.g. "users-service".
func (s Service) Role() string {
	return string(s) + "-service"
}

// Route authentication modes, see [App.RoutesAuthMode].
const (
	RoutesAuthValidate = "validate"
	RoutesAuthPresence = "presence"
)

// StructuredConfig is the top-level configuration container shared by the
// users, routes and posts services. It is populated by merging defaults,
// an optional .env file, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token lifetime, reset guard
	// and the legacy-compatibility switches.
	App App `envPrefix:"APP_"`

	// Storage holds the PostgreSQL connection settings.
	Storage Storage

	// Server holds the listen address and request timeout of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the location of the users service, used by routes and
	// posts to validate bearer tokens.
	Adapter Adapter `envPrefix:"USERS_SERVICE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenDuration is the lifetime of a bearer token issued by POST /users/auth.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenIssuer is the "iss" claim required on reset tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// ResetEnabled registers the POST /<service>/reset endpoint.
	// Env: APP_RESET_ENABLED
	ResetEnabled bool `env:"RESET_ENABLED"`

	// ResetSignKey, when set, requires an X-Reset-Token JWT signed with it.
	// Env: APP_RESET_SIGN_KEY
	ResetSignKey string `env:"RESET_SIGN_KEY"`

	// RoutesAuthMode selects how the routes service authenticates callers:
	// "validate" asks the users service, "presence" only checks that an
	// Authorization header exists.
	// Env: APP_ROUTES_AUTH_MODE
	RoutesAuthMode string `env:"ROUTES_AUTH_MODE"`

	// AllowAnonymousUserUpdate lets PATCH /users/{id} run without a token.
	// Env: APP_ALLOW_ANONYMOUS_USER_UPDATE
	AllowAnonymousUserUpdate bool `env:"ALLOW_ANONYMOUS_USER_UPDATE"`

	// SkipMigrations disables running the embedded migrations at startup.
	// Env: APP_SKIP_MIGRATIONS
	SkipMigrations bool `env:"SKIP_MIGRATIONS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
	SSLMode  string `env:"SSL_MODE"`

	// DSN is a complete PostgreSQL connection URL. When set it takes
	// precedence over the individual fields above.
	// Env: DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// ConnectionString returns DSN when set, otherwise a postgres:// URL
// assembled from the individual connection fields.
func (db DB) ConnectionString() string {
	if db.DSN != "" {
		return db.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:   "/" + db.Name,
	}
	if db.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
	}

	return u.String()
}

// Adapter holds the settings of the outbound client to the users service.
type Adapter struct {
	// UsersServiceURL is the base URL of the users service (e.g. "http://users:5000").
	// Env: USERS_SERVICE_URL
	UsersServiceURL string `env:"URL"`

	// RequestTimeout bounds a single token validation call.
	// Env: USERS_SERVICE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration of the
// given service from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file (path from ENV_FILE, default ".env"; optional)
//  3. Environment variables
//  4. Command-line flags (args, usually os.Args[1:])
//  5. JSON file (path resolved from sources 2-4)
func GetStructuredConfig(service Service, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults(service).
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build(service)
}

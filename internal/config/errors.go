package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates that neither a DSN nor a complete
	// set of host, user and database name was provided.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates a missing or malformed users
	// service URL, or a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown routes auth mode or zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnknownService indicates that the configured service is not one of
	// users, routes or posts.
	ErrUnknownService = errors.New("unknown service")
)

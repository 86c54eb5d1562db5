// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants of the given service before it is used at startup.
func (cfg *StructuredConfig) validate(service Service) error {
	switch service {
	case ServiceUsers, ServiceRoutes, ServicePosts:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownService, service)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	db := cfg.Storage.DB
	if db.DSN == "" && (db.Host == "" || db.User == "" || db.Name == "" || db.Port <= 0) {
		return ErrInvalidStorageConfigs
	}

	if service == ServiceUsers && cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if service == ServiceRoutes && cfg.App.RoutesAuthMode != RoutesAuthValidate && cfg.App.RoutesAuthMode != RoutesAuthPresence {
		return fmt.Errorf("%w: routes auth mode %q", ErrInvalidAppConfigs, cfg.App.RoutesAuthMode)
	}

	if cfg.App.ResetSignKey != "" && cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is required with a reset sign key", ErrInvalidAppConfigs)
	}

	if cfg.NeedsUsersAdapter(service) {
		if err := validateAdapter(cfg.Adapter); err != nil {
			return err
		}
	}

	return nil
}

// NeedsUsersAdapter reports whether the service validates tokens through
// the users service.
func (cfg *StructuredConfig) NeedsUsersAdapter(service Service) bool {
	switch service {
	case ServicePosts:
		return true
	case ServiceRoutes:
		return cfg.App.RoutesAuthMode == RoutesAuthValidate
	default:
		return false
	}
}

func validateAdapter(adapter Adapter) error {
	if adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(adapter.UsersServiceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: users service url %q", ErrInvalidAdapterConfigs, adapter.UsersServiceURL)
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-board/internal/adapter"
	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/models"
)

// remoteTokenValidator validates tokens by asking the users service. It
// fails closed: anything other than a clear answer from the users service
// becomes ErrUpstream.
type remoteTokenValidator struct {
	usersAdapter adapter.UsersAdapter
}

func NewRemoteTokenValidator(usersAdapter adapter.UsersAdapter) TokenValidator {
	return &remoteTokenValidator{usersAdapter: usersAdapter}
}

func (v *remoteTokenValidator) ValidateToken(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrTokenMissing
	}

	identity, err := v.usersAdapter.ValidateToken(ctx, token)
	switch {
	case err == nil:
		return identity, nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return models.Identity{}, ErrTokenInvalid
	case errors.Is(err, adapter.ErrForbidden):
		return models.Identity{}, ErrTokenMissing
	default:
		logger.FromContext(ctx).Err(err).Msg("token validation through users service failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-travel-board/internal/adapter"
	"github.com/MKhiriev/go-travel-board/internal/mock"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRemoteTokenValidator_ValidateToken(t *testing.T) {
	identity := models.Identity{ID: uuid.New(), Username: "alice"}

	tests := []struct {
		name       string
		adapterErr error
		wantErr    error
	}{
		{name: "valid"},
		{name: "unauthorized", adapterErr: fmt.Errorf("%w: expired", adapter.ErrUnauthorized), wantErr: ErrTokenInvalid},
		{name: "forbidden", adapterErr: fmt.Errorf("%w: malformed", adapter.ErrForbidden), wantErr: ErrTokenMissing},
		{name: "unexpected status", adapterErr: fmt.Errorf("%w: http 500", adapter.ErrUnexpectedStatus), wantErr: ErrUpstream},
		{name: "network", adapterErr: fmt.Errorf("%w: connection refused", adapter.ErrRequestFailed), wantErr: ErrUpstream},
		{name: "decode", adapterErr: adapter.ErrDecodingResponse, wantErr: ErrUpstream},
		{name: "unknown", adapterErr: errors.New("boom"), wantErr: ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			usersAdapter := mock.NewMockUsersAdapter(ctrl)
			v := NewRemoteTokenValidator(usersAdapter)

			usersAdapter.EXPECT().ValidateToken(gomock.Any(), "tok").Return(identity, tt.adapterErr).Times(1)

			got, err := v.ValidateToken(context.Background(), "tok")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.Identity{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, identity, got)
		})
	}
}

func TestRemoteTokenValidator_EmptyTokenSkipsUpstream(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersAdapter := mock.NewMockUsersAdapter(ctrl)

	_, err := NewRemoteTokenValidator(usersAdapter).ValidateToken(context.Background(), "")

	assert.ErrorIs(t, err, ErrTokenMissing)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-travel-board/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResetService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	purger := mock.NewMockPurger(ctrl)
	purger.EXPECT().Purge(gomock.Any()).Return(int64(3), nil)

	deleted, err := NewResetService(purger, "posts").Reset(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestResetService_ResetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	purger := mock.NewMockPurger(ctrl)
	dbErr := errors.New("tx aborted")
	purger.EXPECT().Purge(gomock.Any()).Return(int64(0), dbErr)

	_, err := NewResetService(purger, "users").Reset(context.Background())

	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "users reset failed")
}

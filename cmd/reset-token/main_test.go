package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MKhiriev/go-travel-board/internal/config"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MintsTokenForService(t *testing.T) {
	var out bytes.Buffer

	err := run([]string{"-service", "posts", "-key", "secret", "-issuer", "test-issuer"}, &out)
	require.NoError(t, err)

	subject, err := utils.ValidateAndParseJWTToken(strings.TrimSpace(out.String()), "secret", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, "posts", subject)
}

func TestRun_SignKeyFromEnv(t *testing.T) {
	t.Setenv("APP_RESET_SIGN_KEY", "env-secret")
	t.Setenv("RESET_SERVICE", "users")
	var out bytes.Buffer

	require.NoError(t, run(nil, &out))

	subject, err := utils.ValidateAndParseJWTToken(strings.TrimSpace(out.String()), "env-secret", "go-travel-board")
	require.NoError(t, err)
	assert.Equal(t, "users", subject)
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("APP_RESET_SIGN_KEY", "")

	err := run([]string{"-service", "comments", "-key", "k"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrUnknownService)

	err = run([]string{"-service", "routes"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errMissingSignKey)
}

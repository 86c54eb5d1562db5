package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by ParseBearerToken.
var (
	ErrMissingAuthHeader   = errors.New("authorization header is missing")
	ErrMalformedAuthHeader = errors.New("authorization header is malformed")
)

const bearerPrefix = "Bearer "

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): what the token grants access to
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-travel-board", "posts-service", time.Minute, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and returns its subject.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject error")
	}

	return subject, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header value.
//
// An empty header yields ErrMissingAuthHeader. A header without the exact
// "Bearer " prefix, or with nothing after it, yields ErrMalformedAuthHeader.
func ParseBearerToken(authorizationHeader string) (string, error) {
	if authorizationHeader == "" {
		return "", ErrMissingAuthHeader
	}
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return "", ErrMalformedAuthHeader
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMalformedAuthHeader
	}

	return token, nil
}

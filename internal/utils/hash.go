package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used for password hashing.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	saltBytes  = 16
	tokenBytes = 32
)

// GenerateSalt returns a random hex-encoded salt.
func GenerateSalt() (string, error) {
	return randomHex(saltBytes)
}

// GenerateToken returns a random hex-encoded opaque session token (64 characters).
func GenerateToken() (string, error) {
	return randomHex(tokenBytes)
}

// IsTokenFormat reports whether token has the shape produced by
// GenerateToken: 64 hex characters.
func IsTokenFormat(token string) bool {
	if len(token) != hex.EncodedLen(tokenBytes) {
		return false
	}
	_, err := hex.DecodeString(token)
	return err == nil
}

// HashPassword derives an Argon2id key from password and salt and returns it hex-encoded.
//
// The same password and salt always produce the same hash, so the result can
// be stored and later checked with VerifyPassword.
func HashPassword(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// VerifyPassword reports whether password hashed with salt equals hash.
// The comparison runs in constant time.
func VerifyPassword(password, salt, hash string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

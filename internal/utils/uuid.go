package utils

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidUUID is returned by ParseID for anything that is not a canonical UUID.
var ErrInvalidUUID = errors.New("invalid uuid")

// UUIDGenerator produces identifiers for new records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered v7 UUID, falling back to v4 if the clock source fails.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

// ParseID accepts only the canonical 36-character lowercase hyphenated form.
// Braced, URN and hyphenless variants accepted by uuid.Parse are rejected.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil || id.String() != s {
		return uuid.Nil, ErrInvalidUUID
	}
	return id, nil
}

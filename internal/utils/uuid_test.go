package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id1 := g.Generate()
	id2 := g.Generate()

	if id1 == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
	if id1 == id2 {
		t.Fatal("expected distinct uuids")
	}
	if id1.Version() != 7 {
		t.Errorf("expected version 7, got %d", id1.Version())
	}
}

func TestParseID(t *testing.T) {
	canonical := "0190f1a8-4a7e-7c2a-9b1d-3f8e2c6d5a41"

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", canonical, false},
		{"uppercase", "0190F1A8-4A7E-7C2A-9B1D-3F8E2C6D5A41", true},
		{"braced", "{" + canonical + "}", true},
		{"urn", "urn:uuid:" + canonical, true},
		{"no hyphens", "0190f1a84a7e7c2a9b1d3f8e2c6d5a41", true},
		{"garbage", "not-a-uuid", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidUUID) {
					t.Fatalf("expected ErrInvalidUUID, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.String() != tt.input {
				t.Errorf("expected %s, got %s", tt.input, id.String())
			}
		})
	}
}

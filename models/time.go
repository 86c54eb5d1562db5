package models

import (
	"errors"
	"time"
)

// ErrInvalidTimestamp is returned by [ParseTimestamp] for values in none of
// the accepted layouts.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// timestampLayouts lists accepted client timestamp formats. Layouts without
// a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp supplied by a client and
// returns it in UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

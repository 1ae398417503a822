// Package model holds the BSON document shapes stored in MongoDB.
// Every document carries a string UUID in "id"; Mongo's own _id is never read back.
// Timestamps are stored as fixed-width ISO-8601 strings so they sort lexicographically.
package model

import (
	"time"

	"github.com/pkg/errors"
)

// TimeLayout is the storage format for every timestamp field.
const TimeLayout = "2006-01-02T15:04:05.000000-07:00"

// FormatTime renders t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a stored timestamp. RFC 3339 values written by other clients are accepted too.
func ParseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(TimeLayout, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse timestamp %q", raw)
	}

	return t, nil
}

// ParseTimeOrZero is ParseTime that maps unreadable values to the zero time.
func ParseTimeOrZero(raw string) time.Time {
	t, err := ParseTime(raw)
	if err != nil {
		return time.Time{}
	}

	return t
}

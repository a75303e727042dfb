package utils

import (
	"fmt"
	"time"
)

// dbTimestampLayout DB에 저장되는 타임스탬프 형식 (UTC, 마이크로초)
const dbTimestampLayout = "2006-01-02T15:04:05.000000Z"

// NowUTC returns the current time truncated to the precision the datastore keeps.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// FormatTimestamp formats a time for the VARCHAR timestamp columns.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dbTimestampLayout)
}

// ParseTimestamp parses values written by FormatTimestamp.
// RFC3339 is accepted as well for rows written by other tools.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}
	if ts, err := time.Parse(dbTimestampLayout, value); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unsupported db time format: %s", value)
}

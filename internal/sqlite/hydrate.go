package sqlite

import (
	"fmt"
	"time"
)

// Timestamps are stored as RFC3339 strings in UTC.

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}

// filterInt64 coerces a filter value to int64. JSON-decoded filters
// arrive as float64 and string filters as parsed numbers, so integral
// floats and plain ints are accepted alongside int64.
func filterInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

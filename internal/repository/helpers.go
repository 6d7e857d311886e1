package repository

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s.String, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableFloatToValue converts a *float64 to a value suitable for SQLite storage.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableStrToValue converts a *string to a value suitable for SQLite storage.
func nullableStrToValue(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// strFromNull converts a sql.NullString to a *string.
func strFromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// floatFromNull converts a sql.NullFloat64 to a *float64.
func floatFromNull(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// joinInts serializes an int list as a comma-separated string; empty lists
// store as SQL NULL.
func joinInts(vals []int) interface{} {
	if len(vals) == 0 {
		return nil
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// splitInts parses a comma-separated int list; NULL or malformed entries
// yield nothing.
func splitInts(s sql.NullString) []int {
	if !s.Valid || s.String == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s.String, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

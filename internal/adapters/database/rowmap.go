package database

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/AlexSchroder3798/FlyFishing3/pkg/errors"
)

// Row is an open storage row keyed by snake_case column name. Values carry
// whatever the driver produced; the typed accessors below normalize them.
type Row map[string]any

// String returns the column as a string, or "" when absent or NULL
func (r Row) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

// Float returns the column as a float64, or 0 when absent or NULL
func (r Row) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

// FloatPtr returns the column as a *float64, or nil when absent or NULL
func (r Row) FloatPtr(key string) *float64 {
	if v, ok := r[key]; !ok || v == nil {
		return nil
	}
	f := r.Float(key)
	return &f
}

// Int returns the column as an int, or 0 when absent or NULL
func (r Row) Int(key string) int {
	switch v := r[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case []byte:
		n, _ := strconv.Atoi(string(v))
		return n
	}
	return 0
}

// Bool returns the column as a bool, or false when absent or NULL
func (r Row) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case []byte:
		return string(v) == "true" || string(v) == "t"
	case string:
		return v == "true" || v == "t"
	}
	return false
}

// Time returns the column as a time.Time. Drivers that do not decode
// timestamps natively hand back ISO-8601 text, which is parsed here; a
// missing, NULL, or unparseable value yields the zero time.
func (r Row) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case []byte:
		return parseTimestamp(string(v))
	case string:
		return parseTimestamp(v)
	}
	return time.Time{}
}

// TimePtr returns the column as a *time.Time, or nil when absent or NULL
func (r Row) TimePtr(key string) *time.Time {
	if v, ok := r[key]; !ok || v == nil {
		return nil
	}
	t := r.Time(key)
	return &t
}

// StringSlice decodes a JSON array column. Absent, NULL, or malformed
// values yield an empty slice, never nil.
func (r Row) StringSlice(key string) []string {
	out := []string{}
	raw := r.jsonBytes(key)
	if raw == nil {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// Object decodes a JSON object column into dst. Absent or NULL values
// leave dst untouched and report false.
func (r Row) Object(key string, dst any) bool {
	raw := r.jsonBytes(key)
	if raw == nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (r Row) jsonBytes(key string) []byte {
	switch v := r[key].(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return v
	case string:
		if v == "" {
			return nil
		}
		return []byte(v)
	}
	return nil
}

func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999-07", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// jsonValue marshals v for a JSONB column; marshal failures collapse to
// SQL NULL rather than aborting the write
func jsonValue(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// selectRows runs a query and scans every result into an open Row
func selectRows(ctx context.Context, db *sqlx.DB, query string, args []any) ([]Row, error) {
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError("query failed", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row := Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, apperrors.NewStoreError("failed to scan row", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("row iteration failed", err)
	}

	return out, nil
}

// selectRow runs a query expected to match at most one row; no match
// yields (nil, nil) so callers can attach their own not-found error
func selectRow(ctx context.Context, db *sqlx.DB, query string, args []any) (Row, error) {
	rows, err := selectRows(ctx, db, query, args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

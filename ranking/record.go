// Package ranking turns raw competition, driver and team records into
// canonical entities, scopes them to a competition, orders them into
// standings and shapes the rows the public views render.
//
// Everything in this package is pure: no I/O, no shared state, no errors.
// Malformed input degrades to defaults instead of failing.
package ranking

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Record is one raw backend record with an unknown or partial key set.
type Record map[string]any

// Kind tags which canonical shape a Record normalizes into.
type Kind string

const (
	KindCompetition Kind = "competition"
	KindDriver      Kind = "driver"
	KindTeam        Kind = "team"
)

// lookup returns the first key holding a non-nil value.
func (r Record) lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Str returns the first non-blank string form among keys, or "".
func (r Record) Str(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s := toString(v); s != "" {
			return s
		}
	}
	return ""
}

// Int returns the integer at key. Missing or non-numeric values yield 0.
func (r Record) Int(key string) int {
	v, ok := r.lookup(key)
	if !ok {
		return 0
	}
	return toInt(v)
}

// OptInt is Int but distinguishes an absent or unusable value.
func (r Record) OptInt(key string) *int {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	n, ok := parseInt(v)
	if !ok {
		return nil
	}
	return &n
}

// Bool returns the boolean at key, or def when missing or unparseable.
func (r Record) Bool(key string, def bool) bool {
	v, ok := r.lookup(key)
	if !ok {
		return def
	}
	if b, isBytes := v.([]byte); isBytes {
		v = string(b)
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}

// CompetitionID coerces an identifier to the string form used for every
// competition comparison. Numbers render without a fraction or exponent so
// 1, 1.0 and "1" all compare equal.
func CompetitionID(v any) string {
	return toString(v)
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case []byte:
		return strings.TrimSpace(string(x))
	case json.Number:
		return normalizeNumeric(x.String())
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.DateOnly)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func normalizeNumeric(s string) string {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return formatFloat(f)
	}
	return strings.TrimSpace(s)
}

func toInt(v any) int {
	n, _ := parseInt(v)
	return n
}

// parseInt accepts ints of any width, floats with no fraction loss beyond
// truncation, numeric strings and byte slices (MySQL rows scan as []byte).
func parseInt(v any) (int, bool) {
	switch x := v.(type) {
	case string:
		return parseIntString(x)
	case []byte:
		return parseIntString(string(x))
	case json.Number:
		return parseIntString(x.String())
	case bool:
		return 0, false
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseIntString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

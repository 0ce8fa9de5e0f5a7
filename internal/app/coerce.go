package app

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"veristay/internal/domain"
)

/********** untyped JSON helpers **********/

// Request bodies are decoded into `any` with json.Decoder.UseNumber, so
// numbers arrive as json.Number. Plain Go numbers are accepted as well so
// callers can build inputs by hand.

// asObject returns the body as a JSON object or fails.
func asObject(input any) (map[string]any, error) {
	m, ok := input.(map[string]any)
	if !ok {
		return nil, domain.Invalid("Request body must be a JSON object")
	}
	return m, nil
}

// truthy reports JSON truthiness: null, false, zero, "", [] and {} are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// toInt64: integer from json.Number/float64/int/numeric string.
// Fractions are truncated toward zero; bools, NaN and Inf are rejected.
func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return truncFloat(f)
	case float64:
		return truncFloat(t)
	case int:
		return int64(t), true
	case int64:
		return t, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func truncFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// toFloat64: float from json.Number/float64/int/numeric string ("8.5", " 72 ").
func toFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

// toStrings accepts a JSON array whose items are all strings.
// null becomes an empty list.
func toStrings(v any) ([]string, bool) {
	switch t := v.(type) {
	case nil:
		return []string{}, true
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, true
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			s, ok := it.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// charLen counts characters, not bytes, so limits hold for non-ASCII text.
func charLen(s string) int { return utf8.RuneCountInString(s) }

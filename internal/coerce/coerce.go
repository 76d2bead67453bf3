// Package coerce converts loosely typed values (as decoded from JSON
// bodies or CSV cells) into the concrete field types the content
// document uses. Every function is total: bad input yields the
// fallback, never an error.
package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AsString returns v rendered as a trimmed string, or fallback when v
// is nil.
func AsString(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		// JSON numbers decode as float64; render integers without the
		// trailing ".0" so ids and phone numbers survive round trips.
		if s == math.Trunc(s) && math.Abs(s) < 1e15 {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// AsNumber parses v as a number, returning fallback when the result
// is not finite.
func AsNumber(v any, fallback float64) float64 {
	n, ok := number(v)
	if !ok {
		return fallback
	}
	return n
}

// Number is AsNumber without a fallback: the second return reports
// whether v parsed to a finite number at all.
func Number(v any) (float64, bool) {
	return number(v)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// AsBool maps any truthy value to true: non-empty strings, non-zero
// numbers, and boolean true. Nil, empty, zero, and false map to false.
func AsBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	case float64:
		return b != 0
	case int:
		return b != 0
	default:
		return true
	}
}

// TruthyToken is the stricter boolean used for spreadsheet cells:
// only explicit affirmative tokens count, so an unrelated non-empty
// cell (or whitespace) reads as false.
func TruthyToken(v any) bool {
	switch strings.ToLower(strings.TrimSpace(AsString(v, ""))) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// Bullets normalizes a bullet-list field. Sequences are coerced
// element-wise with empties dropped; scalar text is split on newlines
// or commas. Nil yields an empty slice.
func Bullets(v any) []string {
	out := []string{}
	if list, ok := v.([]any); ok {
		for _, item := range list {
			if s := AsString(item, ""); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	txt := AsString(v, "")
	if txt == "" {
		return out
	}
	for _, piece := range strings.FieldsFunc(txt, func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		if s := strings.TrimSpace(strings.TrimSuffix(piece, "\r")); s != "" {
			out = append(out, s)
		}
	}
	return out
}

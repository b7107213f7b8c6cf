package espn

import (
	"strconv"
	"strings"
)

// The upstream API is loose about shapes: the same field can be a string on
// one endpoint and a number on another, and whole sub-objects go missing
// between seasons. These helpers never assume presence; every accessor
// returns a zero value when the field is absent or the wrong type.

// ExtractString returns the value under key coerced to a string, or "".
func ExtractString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	return Stringify(m[key])
}

// ExtractMap returns the sub-object under key, or an empty map.
func ExtractMap(m map[string]any, key string) map[string]any {
	if m != nil {
		if v, ok := m[key].(map[string]any); ok {
			return v
		}
	}
	return map[string]any{}
}

// ExtractArray returns the array under key, or an empty slice.
func ExtractArray(m map[string]any, key string) []any {
	if m != nil {
		if v, ok := m[key].([]any); ok {
			return v
		}
	}
	return []any{}
}

// ExtractInt returns the value under key coerced to an int, or 0.
func ExtractInt(m map[string]any, key string) int {
	if m == nil {
		return 0
	}
	return ParseInt(m[key])
}

// Stringify renders a scalar JSON value as a string. Numeric ids come back
// as JSON numbers on some endpoints and strings on others; both render the
// same way here ("282", not "282.000000"). Non-scalar values render as "".
func Stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// ParseInt coerces a scalar JSON value to an int, defaulting to 0.
func ParseInt(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(val))
		return i
	default:
		return 0
	}
}

// FirstString returns the first non-blank value in the list.
func FirstString(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

package suppliers

import (
	"strconv"
	"strings"
)

/********** safe accessors over raw supplier records **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns the string at path or "" (null and absence collapse).
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// lookupFloat returns a float at path, tolerating int and numeric-string
// payloads; nil marks absence.
func lookupFloat(m map[string]any, path string) *float64 {
	switch v := lookupAny(m, path).(type) {
	case float64:
		f := v
		return &f
	case int:
		f := float64(v)
		return &f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

// lookupInt64 returns an integer at path (JSON numbers arrive as float64).
func lookupInt64(m map[string]any, path string) *int64 {
	switch v := lookupAny(m, path).(type) {
	case float64:
		x := int64(v)
		return &x
	case int:
		x := int64(v)
		return &x
	case int64:
		x := v
		return &x
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &n
		}
	}
	return nil
}

// lookupStrSlice returns the strings in the []any at path; null or absent
// lists become an empty slice, never nil poisoning a collection field.
func lookupStrSlice(m map[string]any, path string) []string {
	out := []string{}
	raw, ok := lookupAny(m, path).([]any)
	if !ok {
		return out
	}
	for _, it := range raw {
		if s, ok := it.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// lookupMapSlice returns the objects in the []any at path.
func lookupMapSlice(m map[string]any, path string) []map[string]any {
	var out []map[string]any
	raw, ok := lookupAny(m, path).([]any)
	if !ok {
		return out
	}
	for _, it := range raw {
		if obj, ok := it.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func ptrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

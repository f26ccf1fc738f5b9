// Package model maps domain entities to and from document store field maps.
// Both persistence drivers share these mappings so documents written by one
// are readable by the other.
package model

import (
	"strings"
	"time"
)

// FieldID is the document key field. Firestore keeps it in the document
// reference, the in-memory driver keeps it in the document itself.
const FieldID = "id"

// maxDocumentIDBytes is the Firestore limit on a document id.
const maxDocumentIDBytes = 1500

// ValidDocumentID reports whether id can name a document in either driver.
// Ids are used exactly as given.
func ValidDocumentID(id string) bool {
	switch {
	case id == "", id == ".", id == "..":
		return false
	case len(id) > maxDocumentIDBytes:
		return false
	case strings.Contains(id, "/"):
		return false
	case len(id) >= 4 && strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__"):
		return false
	}

	return true
}

func getString(data map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := data[k].(string); ok {
			return strings.TrimSpace(v)
		}
	}

	return ""
}

func getBool(data map[string]any, key string) bool {
	v, _ := data[key].(bool)

	return v
}

func getInt(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func getMap(data map[string]any, key string) map[string]any {
	m, _ := data[key].(map[string]any)

	return m
}

// getTime accepts store timestamps, epoch milliseconds and RFC 3339 strings.
func getTime(data map[string]any, key string) time.Time {
	return toTime(data[key])
}

func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case *time.Time:
		if t == nil {
			return time.Time{}
		}

		return t.UTC()
	case int64:
		return time.UnixMilli(t).UTC()
	case int:
		return time.UnixMilli(int64(t)).UTC()
	case float64:
		return time.UnixMilli(int64(t)).UTC()
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}
		}

		return parsed.UTC()
	default:
		return time.Time{}
	}
}

func getStrings(data map[string]any, key string) []string {
	switch v := data[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// getMaps returns a list of nested maps, skipping malformed entries.
func getMaps(data map[string]any, key string) []map[string]any {
	switch v := data[key].(type) {
	case []map[string]any:
		return v
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}

		return out
	default:
		return nil
	}
}

// timeOr returns t, or fallback when t is unset. Drivers pass their
// server timestamp sentinel as fallback.
func timeOr(t time.Time, fallback any) any {
	if t.IsZero() {
		return fallback
	}

	return t.UTC()
}

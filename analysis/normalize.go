package analysis

import (
	"fmt"
	"strings"
)

// Normalize converts heterogeneous model output into the canonical
// string-per-field record. Lists are newline-joined in order, strings pass
// through, and missing keys become empty strings.
func Normalize(raw RawFields) Feedback {
	return Feedback{
		Strengths:       normalizeValue(raw[FieldStrengths]),
		Weaknesses:      normalizeValue(raw[FieldWeaknesses]),
		Recommendations: normalizeValue(raw[FieldRecommendations]),
	}
}

func normalizeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, "\n")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = coerce(item)
		}
		return strings.Join(parts, "\n")
	default:
		return coerce(val)
	}
}

func coerce(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

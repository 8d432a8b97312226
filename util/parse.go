package util

import (
	"strconv"
	"strings"
)

// ParseSize converts a human-readable size string into bytes. Suffixes KB,
// MB, and GB are binary multiples; a bare integer is taken as bytes. This is
// the format size limits use in config ("25MB" audio ceiling, "5MB" upload
// chunks, "50MB" request body). Unparseable input yields defaultBytes.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(s, "GB"):
		multiplier = 1 << 30
		s = strings.TrimSuffix(s, "GB")
	case strings.HasSuffix(s, "MB"):
		multiplier = 1 << 20
		s = strings.TrimSuffix(s, "MB")
	case strings.HasSuffix(s, "KB"):
		multiplier = 1 << 10
		s = strings.TrimSuffix(s, "KB")
	}

	val, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return defaultBytes
	}
	return val * multiplier
}

// MaskSecret keeps the first visiblePrefix characters of a credential and
// masks the rest, so API keys can appear in startup logs without leaking.
// Values no longer than the prefix are fully masked.
func MaskSecret(s string, visiblePrefix int) string {
	if len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}

package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLevel accepts the slog level names in any case, plus WARNING as an
// alias for WARN.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LevelFromString is ParseLevel for optional config values. A missing or
// unknown level falls back to INFO.
func LevelFromString(str *string) slog.Level {
	if str == nil {
		return slog.LevelInfo
	}
	level, err := ParseLevel(*str)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

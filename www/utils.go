package www

import (
	"log/slog"
	"net/url"
	"strconv"

	"github.com/angas/pricepulse/logging"
)

func intOrDefault(u *url.URL, key string, defaultValue int) int {
	if v := u.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func levelOrDefault(u *url.URL, key string, defaultValue slog.Level) (slog.Level, error) {
	if v := u.Query().Get(key); v != "" {
		return logging.ParseLevel(v)
	}
	return defaultValue, nil
}

package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angas/pricepulse/database"
)

type LogAttrFormat string

const (
	LogAttrFormatText LogAttrFormat = "TEXT"
	LogAttrFormatJSON LogAttrFormat = "JSON"
)

type LogEntrySaver interface {
	SaveLogEntry(ctx context.Context, r database.LogEntryRow) error
}

type SQLiteHandler struct {
	db       LogEntrySaver
	minLevel slog.Level
	format   LogAttrFormat
	attrs    []slog.Attr
}

func NewSQLiteHandler(db LogEntrySaver, minLevel slog.Level, format LogAttrFormat) *SQLiteHandler {
	return &SQLiteHandler{db: db, minLevel: minLevel, format: format}
}

func (h *SQLiteHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < h.minLevel {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	return h.db.SaveLogEntry(ctx, database.LogEntryRow{
		Timestamp: recordTime(r),
		Level:     int(r.Level),
		Message:   r.Message,
		Attrs:     h.formatAttrs(attrs),
	})
}

func (h *SQLiteHandler) formatAttrs(attrs []slog.Attr) string {
	if len(attrs) == 0 {
		return ""
	}

	if strings.EqualFold(string(h.format), string(LogAttrFormatText)) {
		var b strings.Builder
		for _, a := range attrs {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			b.WriteString(a.Key)
			b.WriteString("=")
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(a.Value.String(), "=", "\\="), ";", "\\;"))
		}
		return b.String()
	}

	m := make([]map[string]string, 0, len(attrs))
	for _, a := range attrs {
		m = append(m, map[string]string{a.Key: a.Value.String()})
	}
	jsonBytes, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf(`{"error": "%v"}`, err)
	}
	return string(jsonBytes)
}

func (h *SQLiteHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &h2
}

func (h *SQLiteHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *SQLiteHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.minLevel
}

// Timestamps of records without a time are set when saved.
func recordTime(r slog.Record) time.Time {
	if r.Time.IsZero() {
		return time.Now()
	}
	return r.Time
}

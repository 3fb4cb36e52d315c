package publisher

import (
	"context"
	"fmt"
	"log/slog"
)

// mqttLogger routes paho's internal logging to slog.
type mqttLogger struct {
	logger *slog.Logger
	level  slog.Level
}

func newMqttLogger(logger *slog.Logger, level slog.Level) *mqttLogger {
	return &mqttLogger{logger: logger, level: level}
}

func (l *mqttLogger) Println(v ...any) {
	l.logger.Log(context.Background(), l.level, fmt.Sprint(v...))
}

func (l *mqttLogger) Printf(format string, v ...any) {
	l.logger.Log(context.Background(), l.level, fmt.Sprintf(format, v...))
}

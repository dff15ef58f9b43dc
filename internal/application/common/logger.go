package common

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sdudley/hexfront-go/internal/domain/shared"
)

// EngineLogger provides logging for turn processing operations
type EngineLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger EngineLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op logger if not found
func LoggerFromContext(ctx context.Context) EngineLogger {
	if logger, ok := ctx.Value(loggerKey).(EngineLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

// noOpLogger is a logger that does nothing (fallback when no logger in context)
type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {
}

// StderrLogger writes one line per entry with sorted metadata keys.
type StderrLogger struct {
	clock shared.Clock
}

func NewStderrLogger() *StderrLogger {
	return &StderrLogger{clock: shared.NewRealClock()}
}

// NewStderrLoggerWithClock creates a logger over a fixed clock for tests.
func NewStderrLoggerWithClock(clock shared.Clock) *StderrLogger {
	return &StderrLogger{clock: clock}
}

func (l *StderrLogger) Log(level, message string, metadata map[string]interface{}) {
	var sb strings.Builder
	sb.WriteString(l.clock.Now().UTC().Format(time.RFC3339))
	sb.WriteString(" [")
	sb.WriteString(strings.ToUpper(level))
	sb.WriteString("] ")
	sb.WriteString(message)

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(" %s=%v", k, metadata[k]))
	}
	fmt.Fprintln(os.Stderr, sb.String())
}

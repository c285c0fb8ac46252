package observability

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field represents a key-value pair attached to every log line of a context.
type Field struct {
	Key   string
	Value interface{}
}

// MetricField represents a key-value pair for logging metrics.
type MetricField struct {
	Key   string
	Value interface{}
}

type ObservabilityContextKey string

const observabilityKey ObservabilityContextKey = "observability_fields"

// WithFields adds a set of observability fields to the context.
// A later field with the same key shadows an earlier one.
func WithFields(ctx context.Context, fields ...Field) context.Context {
	existing := getObservabilityFields(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, observabilityKey, merged)
}

func getObservabilityFields(ctx context.Context) []Field {
	if fields, ok := ctx.Value(observabilityKey).([]Field); ok {
		return fields
	}
	return nil
}

// zapFields flattens context fields and extras into zap fields, last write wins, sorted by key.
func zapFields(ctx context.Context, extra []MetricField) []zapcore.Field {
	byKey := make(map[string]interface{})
	for _, f := range getObservabilityFields(ctx) {
		byKey[f.Key] = f.Value
	}
	for _, f := range extra {
		byKey[f.Key] = f.Value
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zapcore.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, byKey[k]))
	}
	return out
}

// Middleware tags every request context with request fields and logs one line per request.
// Health check endpoints are not logged.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx := WithFields(c.Request.Context(),
			Field{"request_id", requestID},
			Field{"path", c.Request.URL.Path},
			Field{"method", c.Request.Method},
		)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(ctx, "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(http.StatusInternalServerError)
			}
			if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/metrics" {
				return
			}
			l.Metrics(ctx,
				MetricField{"status", c.Writer.Status()},
				MetricField{"latency_ms", time.Since(start).Milliseconds()},
			)
		}()
		c.Next()
	}
}

// Logger wraps zap and pulls structured fields out of the context.
type Logger struct {
	zapLogger *zap.Logger
}

// NewLoggerWithLevel creates a production JSON logger at the given level
// ("debug", "info", "warn", "error").
func NewLoggerWithLevel(level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := cfg.Build(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &Logger{zapLogger: zapLogger}, nil
}

// NewNopLogger returns a logger that discards everything. Used by tests.
func NewNopLogger() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(z *zap.Logger) *Logger {
	return &Logger{zapLogger: z}
}

func (l *Logger) with(ctx context.Context) *zap.Logger {
	fields := getObservabilityFields(ctx)
	if len(fields) == 0 {
		return l.zapLogger
	}
	return l.zapLogger.With(zapFields(ctx, nil)...)
}

func (l *Logger) Info(ctx context.Context, msg string) {
	l.with(ctx).Info(msg)
}

func (l *Logger) InfoWithError(ctx context.Context, msg string, err error) {
	l.with(ctx).Info(msg, zap.Error(err))
}

func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.with(ctx).Error(msg, zap.Error(err))
}

func (l *Logger) Warn(ctx context.Context, msg string) {
	l.with(ctx).Warn(msg)
}

// WarnWithError logs a warning together with the error that caused it.
func (l *Logger) WarnWithError(ctx context.Context, msg string, err error) {
	l.with(ctx).Warn(msg, zap.Error(err))
}

func (l *Logger) Debug(ctx context.Context, msg string) {
	l.with(ctx).Debug(msg)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(ctx context.Context, msg string, err error) {
	l.with(ctx).Fatal(msg, zap.Error(err))
}

// Metrics logs one "Metrics" line carrying the context fields plus the given ones.
func (l *Logger) Metrics(ctx context.Context, fields ...MetricField) {
	l.zapLogger.Info("Metrics", zapFields(ctx, fields)...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}

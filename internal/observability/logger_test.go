package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewFromZap(zap.New(core)), logs
}

func TestWithFields_LaterKeyWins(t *testing.T) {
	t.Parallel()
	logger, logs := observed(zapcore.DebugLevel)

	ctx := WithFields(context.Background(), Field{"account_id", "a"}, Field{"send_job_id", "j"})
	ctx = WithFields(ctx, Field{"account_id", "b"})
	logger.Info(ctx, "hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "b", fields["account_id"])
	assert.Equal(t, "j", fields["send_job_id"])
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()
	logger, logs := observed(zapcore.InfoLevel)
	ctx := context.Background()
	boom := errors.New("boom")

	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "info")
	logger.WarnWithError(ctx, "warn", boom)
	logger.Error(ctx, "error", boom)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestLogger_Metrics(t *testing.T) {
	t.Parallel()
	logger, logs := observed(zapcore.InfoLevel)

	ctx := WithFields(context.Background(), Field{"account_id", "a"})
	logger.Metrics(ctx, MetricField{"emails_sent", 3}, MetricField{"account_id", "override"})

	require.Equal(t, 1, logs.FilterMessage("Metrics").Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(3), fields["emails_sent"])
	assert.Equal(t, "override", fields["account_id"])
}

func TestNewLoggerWithLevel(t *testing.T) {
	t.Parallel()

	_, err := NewLoggerWithLevel("debug")
	assert.NoError(t, err)

	_, err = NewLoggerWithLevel("loud")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() (*gin.Engine, *observer.ObservedLogs) {
		logger, logs := observed(zapcore.InfoLevel)
		r := gin.New()
		r.Use(Middleware(logger))
		r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/fields", func(c *gin.Context) {
			fields := getObservabilityFields(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"count": len(fields)})
		})
		r.GET("/panic", func(c *gin.Context) { panic("bad") })
		return r, logs
	}

	t.Run("keeps caller request id", func(t *testing.T) {
		r, logs := newRouter()
		req := httptest.NewRequest(http.MethodGet, "/fields", nil)
		req.Header.Set("X-Request-ID", "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc", w.Header().Get("X-Request-ID"))
		assert.JSONEq(t, `{"count":3}`, w.Body.String())
		require.Equal(t, 1, logs.FilterMessage("Metrics").Len())
		assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])
	})

	t.Run("generates request id", func(t *testing.T) {
		r, _ := newRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fields", nil))

		assert.Regexp(t, `^req-[0-9a-f-]{36}$`, w.Header().Get("X-Request-ID"))
	})

	t.Run("health checks are not logged", func(t *testing.T) {
		r, logs := newRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("recovers panics", func(t *testing.T) {
		r, logs := newRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, 1, logs.FilterMessage("Recovered from panic").Len())
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payment/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerContext_CreateHandler(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := logging.New(zap.New(core))

	handler := NewLoggerContext().CreateHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.InfoCtx(r.Context(), "handled")
	}))

	t.Run("keeps client request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/payments/card", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-42", fields["request-id"])
		assert.Equal(t, "/api/payments/card", fields["path"])
		assert.Equal(t, http.MethodPost, fields["method"])
	})

	t.Run("generates request id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/brands", nil))

		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, rec.Header().Get(RequestIDHeader), entries[0].ContextMap()["request-id"])
	})
}

func TestPanicRecover_CreateHandler(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := NewPanicRecover(logging.New(zap.New(core))).CreateHandler(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}),
	)

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic in HTTP handler").Len())
}

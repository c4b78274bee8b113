package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAdminAuth(t *testing.T) {
	auth := NewAdminAuth("secret-token", nopLogger{})

	var reached bool
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("valid token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		req.Header.Set("X-Admin-Token", "secret-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.True(t, reached)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		req.Header.Set("X-Admin-Token", "wrong")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	var gotID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetRequestID(r.Context())
	}))

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, gotID)
		assert.Equal(t, gotID, rec.Header().Get("X-Request-ID"))
	})

	t.Run("keeps client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers", nil)
		req.Header.Set("X-Request-ID", "client-id-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-id-123", gotID)
		assert.Equal(t, "client-id-123", rec.Header().Get("X-Request-ID"))
	})
}

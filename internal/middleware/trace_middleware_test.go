package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"predictBot/business/prediction"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTraceEcho() *echo.Echo {
	e := echo.New()
	e.Use(TraceMiddleware())
	e.GET("/trace", func(c echo.Context) error {
		return c.String(http.StatusOK, prediction.TraceIDFromContext(c.Request().Context()))
	})
	return e
}

func TestTraceMiddleware_ReusesRequestID(t *testing.T) {
	e := newTraceEcho()

	req := httptest.NewRequest(http.MethodGet, "/trace", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "req-123", rec.Body.String())
}

func TestTraceMiddleware_GeneratesID(t *testing.T) {
	e := newTraceEcho()

	req := httptest.NewRequest(http.MethodGet, "/trace", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	tid := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, tid)
	_, err := uuid.Parse(tid)
	assert.NoError(t, err)
	assert.Equal(t, tid, rec.Body.String())
}

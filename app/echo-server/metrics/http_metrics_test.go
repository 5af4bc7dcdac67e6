package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMiddleware_LabelsByRouteAndStatus(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.POST("/api/v1/predictions/feedback", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})
	e.GET("/api/v1/predictions/state/:user_id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	created := RequestTotal.WithLabelValues("/api/v1/predictions/feedback", "201")
	failed := RequestTotal.WithLabelValues("/api/v1/predictions/state/:user_id", "502")
	beforeCreated := counterValue(t, created)
	beforeFailed := counterValue(t, failed)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/predictions/feedback", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/predictions/state/7", nil))

	assert.Equal(t, beforeCreated+1, counterValue(t, created))
	assert.Equal(t, beforeFailed+1, counterValue(t, failed))
}

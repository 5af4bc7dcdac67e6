package router

import (
	"predictBot/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetPredictionRoutes(api *echo.Group, handler *rest.PredictionHandler) {
	predictions := api.Group("/predictions")
	predictions.POST("", handler.Predict)
	predictions.POST("/feedback", handler.Feedback)
	predictions.GET("/state/:user_id", handler.GetState)
	predictions.DELETE("/state/:user_id", handler.ResetState)
}

func SetMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

package middleware

import (
	"predictBot/business/prediction"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware puts a trace id on the request context, reusing X-Request-ID when present.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(echo.HeaderXRequestID)
			if tid == "" {
				tid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, tid)

			ctx := prediction.WithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

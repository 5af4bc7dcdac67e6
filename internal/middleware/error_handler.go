package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"predictBot/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape the handlers, e.g. unknown routes.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	} else {
		logger.Error("Unhandled error", "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, echo.Map{"message": msg})
}

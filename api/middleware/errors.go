package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/zlee-dev/dice-rewards/internal/apperrors"
)

// ErrorHandler maps AppError rejections to their status with a bare
// message, and anything unexpected to a 500 carrying diagnostic detail.
// Rejections are expected traffic and are not logged as errors.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			_ = c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, echo.Map{"error": fmt.Sprintf("%v", httpErr.Message)})
			return
		}

		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "服务器错误",
			"trace": err.Error(),
		})
	}
}

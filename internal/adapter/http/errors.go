package http

import (
	"errors"
	"net/http"

	"loan-application-api/internal/infrastructure/logging"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorHandler answers errors that reach echo. *echo.HTTPError keeps its
// status; anything else is logged and hidden behind a generic 500.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
			msg := http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok {
				msg = s
			}
			err = respond(c, he.Code, ErrorResponse{Error: msg})
		} else {
			logging.FromContext(c.Request().Context(), log).WithError(err).Error("unhandled error")
			err = respond(c, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		if err != nil {
			log.WithError(err).Warn("write error response")
		}
	}
}

func respond(c echo.Context, code int, body any) error {
	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}
	return c.JSON(code, body)
}

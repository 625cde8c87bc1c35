package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register mounts every route. metrics may be nil.
func Register(e *echo.Echo, h *Handler, sh *SubmissionHandler, metrics http.Handler) {
	e.GET("/", h.Welcome)
	e.GET("/health", h.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api")
	api.GET("/test", h.DBTest)
	api.POST("/submit-loan", sh.SubmitLoan)
}

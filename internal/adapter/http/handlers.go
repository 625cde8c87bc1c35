package http

import (
	"context"
	"net/http"
	"time"

	"loan-application-api/internal/adapter/repository/mysql"
	"loan-application-api/internal/infrastructure/logging"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StoreProber checks that the store answers a trivial query.
type StoreProber interface {
	Ping(ctx context.Context) ([]mysql.ProbeRow, error)
}

type Handler struct {
	probe         StoreProber
	log           logrus.FieldLogger
	exposeDetails bool
}

func NewHandler(probe StoreProber, log logrus.FieldLogger, exposeDetails bool) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{probe: probe, log: log, exposeDetails: exposeDetails}
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the Loan Application API"})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// DBTest runs the store probe and echoes its rows.
func (h *Handler) DBTest(c echo.Context) error {
	ctx := c.Request().Context()
	rows, err := h.probe.Ping(ctx)
	if err != nil {
		logging.FromContext(ctx, h.log).WithError(err).Error("database probe failed")
		return c.JSON(http.StatusInternalServerError, failure("Database connection failed", err, h.exposeDetails))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Database connection successful",
		"data":    rows,
	})
}

func failure(msg string, err error, expose bool) FailureResponse {
	out := FailureResponse{Error: msg}
	if expose && err != nil {
		out.Details = err.Error()
	}
	return out
}

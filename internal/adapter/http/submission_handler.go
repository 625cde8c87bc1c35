package http

import (
	"context"
	"errors"
	"net/http"

	"loan-application-api/internal/domain/application"
	"loan-application-api/internal/usecase/submission"

	"github.com/labstack/echo/v4"
)

const msgMissingFields = "Missing required fields in newApplication"

type Submitter interface {
	Submit(ctx context.Context, doc submission.Document) (*submission.SubmitResult, error)
}

type SubmissionHandler struct {
	uc            Submitter
	exposeDetails bool
}

func NewSubmissionHandler(uc Submitter, exposeDetails bool) *SubmissionHandler {
	return &SubmissionHandler{uc: uc, exposeDetails: exposeDetails}
}

type submitLoanResp struct {
	Message       string `json:"message"`
	ApplicationID uint64 `json:"application_id"`
}

func (h *SubmissionHandler) SubmitLoan(c echo.Context) error {
	// Bind + validate body payload JSON
	var doc submission.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   msgMissingFields,
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Submit(c.Request().Context(), doc)
	// Map domain errors → HTTP codes
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, submitLoanResp{
			Message:       "Application submitted successfully",
			ApplicationID: res.ApplicationID,
		})
	case errors.Is(err, application.ErrMissingRequiredFields):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgMissingFields})
	default:
		return c.JSON(http.StatusInternalServerError, failure("Failed to submit application", err, h.exposeDetails))
	}
}

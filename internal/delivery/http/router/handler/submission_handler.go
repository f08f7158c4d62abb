package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sensorysearch/internal/delivery/http/response"
	"sensorysearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultModerationPageSize = 20

// SubmissionHandlerParams holds dependencies for SubmissionHandler, injected by Fx.
type SubmissionHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	Logger       *slog.Logger
}

// SubmissionHandler holds dependencies for submission workflow handlers
type SubmissionHandler struct {
	submissionUC usecase.SubmissionUsecase
	logger       *slog.Logger
}

// NewSubmissionHandler is the constructor for SubmissionHandler
func NewSubmissionHandler(params SubmissionHandlerParams) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUC: params.SubmissionUC,
		logger:       params.Logger,
	}
}

// RejectSubmissionRequest represents the request body for rejecting a submission
type RejectSubmissionRequest struct {
	Reason string `json:"reason"`
}

// Submit handles a new organizer submission. Validation reports every field
// violation in one response so the form can render them together.
func (h *SubmissionHandler) Submit(c echo.Context) error {
	var req usecase.SubmitInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}

	if result := h.submissionUC.Validate(&req); !result.Valid {
		return response.ValidationFailed(c, result.Errors)
	}

	submission, err := h.submissionUC.Submit(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, submission, "Submission received and awaiting review")
}

// ListPending returns the moderation queue, oldest first.
func (h *SubmissionHandler) ListPending(c echo.Context) error {
	limit := defaultModerationPageSize
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_PAGINATION", "Invalid limit")
		}
		limit = parsed
	}

	offset := 0
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		parsed, err := strconv.Atoi(offsetParam)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_PAGINATION", "Invalid offset")
		}
		offset = parsed
	}

	submissions, err := h.submissionUC.ListPending(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submissions, "Pending submissions retrieved successfully")
}

// Approve transitions a pending submission to approved.
func (h *SubmissionHandler) Approve(c echo.Context) error {
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid submission ID")
	}

	if err := h.submissionUC.Approve(c.Request().Context(), submissionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "approved"}, "Submission approved successfully")
}

// Reject transitions a pending submission to rejected with an optional reason.
func (h *SubmissionHandler) Reject(c echo.Context) error {
	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid submission ID")
	}

	var req RejectSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	if err := h.submissionUC.Reject(c.Request().Context(), submissionID, req.Reason); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "rejected"}, "Submission rejected successfully")
}

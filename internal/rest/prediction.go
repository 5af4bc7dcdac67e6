package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"predictBot/business/prediction"
	"predictBot/domain"
	"predictBot/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PredictionHandler struct {
		validate          *validator.Validate
		predictionService PredictionService
		timeout           time.Duration
	}

	PredictionService interface {
		Predict(ctx context.Context, userID int64, lastObserved int, history []int) (domain.PredictionResult, error)
		ReportFeedback(ctx context.Context, userID int64, outcome domain.Outcome) (domain.UserPredictionState, error)
		GetState(ctx context.Context, userID int64) (domain.UserPredictionState, error)
		ResetState(ctx context.Context, userID int64) error
	}

	PredictRequest struct {
		UserID       int64 `json:"user_id" validate:"required"`
		LastObserved *int  `json:"last_observed" validate:"required"`
		History      []int `json:"history" validate:"max=100"`
	}

	FeedbackRequest struct {
		UserID  int64  `json:"user_id" validate:"required"`
		Outcome string `json:"outcome" validate:"required,oneof=win loss"`
	}

	FeedbackResponse struct {
		Message string                     `json:"message"`
		State   domain.UserPredictionState `json:"state"`
	}

	// ResponseError represent the response error struct
	ResponseError struct {
		Message string `json:"message"`
	}
)

var feedbackAcks = map[domain.Outcome]string{
	domain.OutcomeWin:  "Win, Congratulations 🎉.",
	domain.OutcomeLoss: "Next prediction will switch.",
}

func NewPredictionHandler(svc PredictionService, timeout time.Duration) *PredictionHandler {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &PredictionHandler{
		validate:          validator.New(),
		predictionService: svc,
		timeout:           timeout,
	}
}

// POST /api/v1/predictions
func (h *PredictionHandler) Predict(c echo.Context) error {
	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.predictionService.Predict(ctx, req.UserID, *req.LastObserved, req.History)
	if err != nil {
		return errorResponse(c, "Failed to predict", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// POST /api/v1/predictions/feedback
func (h *PredictionHandler) Feedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	outcome := domain.Outcome(req.Outcome)
	state, err := h.predictionService.ReportFeedback(c.Request().Context(), req.UserID, outcome)
	if err != nil {
		return errorResponse(c, "Failed to record feedback", err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(FeedbackResponse{
		Message: feedbackAcks[outcome],
		State:   state,
	}))
}

// GET /api/v1/predictions/state/:user_id
func (h *PredictionHandler) GetState(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	state, err := h.predictionService.GetState(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(c, "Failed to load state", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(state))
}

// DELETE /api/v1/predictions/state/:user_id
func (h *PredictionHandler) ResetState(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	if err := h.predictionService.ResetState(c.Request().Context(), userID); err != nil {
		return errorResponse(c, "Failed to reset state", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func errorResponse(c echo.Context, msg string, err error) error {
	var fe *prediction.FetchError
	switch {
	case errors.Is(err, prediction.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	case errors.As(err, &fe):
		logger.Error(msg, "trace_id", prediction.TraceIDFromContext(c.Request().Context()), "error", err)
		return c.JSON(http.StatusBadGateway, ResponseError{Message: "Error fetching data: " + fe.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, ResponseError{Message: err.Error()})
	default:
		logger.Error(msg, "trace_id", prediction.TraceIDFromContext(c.Request().Context()), "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
}

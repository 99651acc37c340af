package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/SscSPs/payment_recon_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = 2

// statusForError maps the service error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes the error body and logs at a level matching the status.
// Internal failures never leak their cause to the client.
func respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)
	body := dto.ErrorResponse{Error: err.Error(), Code: apperrors.Kind(err)}

	switch status {
	case http.StatusInternalServerError:
		logger.Error(msg, slog.String("error", err.Error()))
		body.Error = msg
	case http.StatusServiceUnavailable:
		logger.Error(msg, slog.String("error", err.Error()))
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
	default:
		logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.AbortWithStatusJSON(status, body)
}

// respondBindError reports a malformed body or query string.
func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request format: " + err.Error(),
		Code:  apperrors.Kind(apperrors.ErrValidation),
	})
}

// bindOptionalJSON binds a request body that may be omitted entirely.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// actorFromContext returns the caller, aborting with 401 when the auth
// middleware did not identify one.
func actorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Actor not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  apperrors.Kind(apperrors.ErrUnauthorized),
		})
	}
	return actor, ok
}

// parsePeriod reads a [from, to) window given as RFC3339 timestamps or
// YYYY-MM-DD dates (midnight UTC).
func parsePeriod(params dto.ReconciliationPeriodParams) (domain.Period, error) {
	from, err := parseInstant(params.From)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: invalid from: %v", apperrors.ErrValidation, err)
	}
	to, err := parseInstant(params.To)
	if err != nil {
		return domain.Period{}, fmt.Errorf("%w: invalid to: %v", apperrors.ErrValidation, err)
	}
	return domain.Period{From: from, To: to}, nil
}

func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC3339 or YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

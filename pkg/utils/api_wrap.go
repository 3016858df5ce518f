package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the sentinel error set onto HTTP responses. Every
// branch is terminal for the request; nothing here retries on the caller's
// behalf.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingCredential):
		RespondError(c, http.StatusBadRequest, "API credential is not set. Configure it on the settings page.")
	case errors.Is(err, ErrUpstreamError):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrMalformedEnvelope):
		RespondError(c, http.StatusBadGateway, "Trip generation failed. Please try again.")
	case errors.Is(err, ErrInvalidPlanJSON):
		RespondError(c, http.StatusBadGateway, "The model produced an invalid result. Please try again.")
	case errors.Is(err, ErrAcquisitionFailed):
		RespondError(c, http.StatusServiceUnavailable, "Map failed to load. Check the map credential or the network.")
	case errors.Is(err, ErrMapSessionGone):
		RespondError(c, http.StatusNotFound, "Map session not found")
	case errors.Is(err, ErrMapNotReady):
		RespondError(c, http.StatusConflict, "Map is still loading. Try again shortly.")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailTaken):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrExpenseNotFound):
		RespondError(c, http.StatusNotFound, "Expense not found")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

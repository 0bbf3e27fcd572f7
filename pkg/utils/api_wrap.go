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

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to HTTP responses. Distinct
// NotFound causes keep distinct messages: a missing city, a missing leg and a
// missing directory pair each call for a different fix on the client side.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, "City not found")
	case errors.Is(err, ErrTravelNotFound):
		RespondError(c, http.StatusNotFound, "Travel not found")
	case errors.Is(err, ErrRouteLegNotFound):
		RespondError(c, http.StatusNotFound, "Route leg not found")
	case errors.Is(err, ErrRouteEmpty):
		RespondError(c, http.StatusNotFound, "The travel has no route legs yet")
	case errors.Is(err, ErrCityNotOnRoute):
		RespondError(c, http.StatusNotFound, "City is not part of this route")
	case errors.Is(err, ErrDirectoryLegNotFound):
		RespondError(c, http.StatusNotFound, "No scheduled connection for this city pair and transport")
	case errors.Is(err, ErrNoRouteBetweenCities):
		RespondError(c, http.StatusNotFound, "No connection exists to reconnect the remaining cities")
	case errors.Is(err, ErrEntertainmentNotFound):
		RespondError(c, http.StatusNotFound, "Entertainment not found")
	case errors.Is(err, ErrAccommodationNotFound):
		RespondError(c, http.StatusNotFound, "Accommodation not found")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvariantViolation), errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidStatusTransition):
		RespondError(c, http.StatusConflict, "Travel status does not allow this operation")
	case errors.Is(err, ErrAlreadyJoined):
		RespondError(c, http.StatusConflict, "User already joined this travel")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrDuplicateEntry):
		RespondError(c, http.StatusConflict, "An entry with these fields already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid login or password")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, &ErrorResponse{
		Error:   errType,
		Message: message,
	})
}

// respondServiceError maps domain errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMedicationNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidMedication),
		errors.Is(err, domain.ErrInvalidSettings),
		errors.Is(err, domain.ErrInvalidTimeFormat):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrAlarmServiceUnavailable):
		respondError(c, http.StatusServiceUnavailable, "unavailable", "alarm service unavailable")
	default:
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to process request")
	}
}

func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid medication id %q", c.Param("id"))
	}
	return id, nil
}

// parseNow reads the optional "from" query override used to plan against a
// virtual current time.
func parseNow(c *gin.Context, clock domain.Clock) (time.Time, error) {
	fromStr := c.Query("from")
	if fromStr == "" {
		return clock.Now(), nil
	}
	parsed, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		return time.Time{}, errors.New("invalid from time format, expected RFC3339")
	}
	return parsed.In(clock.Location()), nil
}

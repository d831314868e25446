package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/infra/alarmqueue"
)

type AlarmHandler struct {
	alarms AlarmService
	clock  domain.Clock
}

func NewAlarmHandler(alarms AlarmService, clock domain.Clock) *AlarmHandler {
	return &AlarmHandler{
		alarms: alarms,
		clock:  clock,
	}
}

// HandleScheduleAll plans and issues alarms for every active medication.
func (h *AlarmHandler) HandleScheduleAll(c *gin.Context) {
	ctx := c.Request.Context()

	now, err := parseNow(c, h.clock)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	slog.InfoContext(ctx, "handling schedule all request",
		slog.Time("now", now),
	)

	result, err := h.alarms.ScheduleAllAlarms(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "schedule all finished with errors",
			slog.String("error", err.Error()),
		)
		if result == nil {
			respondServiceError(c, err)
			return
		}
		// partial success still reports what was issued
		c.JSON(http.StatusMultiStatus, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AlarmHandler) HandleCancelAll(c *gin.Context) {
	ctx := c.Request.Context()

	cancelled, err := h.alarms.CancelAllAlarms(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel all alarms",
			slog.Int("cancelled", cancelled),
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	slog.InfoContext(ctx, "cancelled all alarms", slog.Int("cancelled", cancelled))
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

// HandleFire is the alarm queue callback. Processing errors answer 500 so the
// queue redelivers; duplicates are absorbed by the notification ledger. A
// malformed time of day answers 400 since redelivery cannot fix it.
func (h *AlarmHandler) HandleFire(c *gin.Context) {
	ctx := c.Request.Context()

	var payload alarmqueue.FirePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.WarnContext(ctx, "fire payload decode failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		respondError(c, http.StatusBadRequest, "validation_error", "invalid fire payload")
		return
	}
	if payload.MedicationID <= 0 || payload.TimeOfDay == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "medication_id and time_of_day are required")
		return
	}

	slog.InfoContext(ctx, "alarm fired",
		slog.Int64("medication_id", payload.MedicationID),
		slog.String("time_of_day", payload.TimeOfDay),
		slog.String("key", payload.Key),
		slog.String("kind", payload.Kind),
	)

	result, err := h.alarms.OnAlarmFired(ctx, payload.MedicationID, payload.TimeOfDay, h.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to handle fired alarm",
			slog.Int64("medication_id", payload.MedicationID),
			slog.String("time_of_day", payload.TimeOfDay),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrInvalidTimeFormat) {
			respondServiceError(c, err)
			return
		}
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to handle fired alarm")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AlarmHandler) HandleScheduleMedication(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	result, err := h.alarms.RescheduleMedication(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to schedule medication alarms",
			slog.Int64("medication_id", id),
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type cancelMedicationRequest struct {
	Times []string `json:"times"`
}

// HandleCancelMedication cancels the given times, or every alarm of the
// medication when the body is empty or lists no times.
func (h *AlarmHandler) HandleCancelMedication(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var req cancelMedicationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid cancel request body")
			return
		}
	}

	cancelled, err := h.alarms.CancelMedicationAlarms(ctx, id, req.Times)
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel medication alarms",
			slog.Int64("medication_id", id),
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

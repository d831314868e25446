package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type medicationRequest struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	DosageAmount  string     `json:"dosage_amount"`
	DosageUnit    string     `json:"dosage_unit"`
	Frequency     int        `json:"frequency"`
	ScheduleTimes []string   `json:"schedule_times"`
	Instructions  string     `json:"instructions"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Notes         string     `json:"notes"`
	IconType      string     `json:"icon_type"`
	IsActive      *bool      `json:"is_active"`
	LeadMinutes   *int       `json:"lead_minutes"`
}

func (r *medicationRequest) apply(med *domain.Medication) {
	med.Name = r.Name
	med.Description = r.Description
	med.DosageAmount = r.DosageAmount
	med.DosageUnit = r.DosageUnit
	med.Frequency = r.Frequency
	med.ScheduleTimes = r.ScheduleTimes
	med.Instructions = r.Instructions
	if r.StartDate != nil {
		med.StartDate = *r.StartDate
	}
	med.EndDate = r.EndDate
	med.Notes = r.Notes
	med.IconType = r.IconType
	if r.IsActive != nil {
		med.IsActive = *r.IsActive
	}
	med.LeadMinutes = r.LeadMinutes
}

type medicationResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	DosageAmount  string     `json:"dosage_amount,omitempty"`
	DosageUnit    string     `json:"dosage_unit,omitempty"`
	Frequency     int        `json:"frequency"`
	ScheduleTimes []string   `json:"schedule_times"`
	Instructions  string     `json:"instructions,omitempty"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	IconType      string     `json:"icon_type,omitempty"`
	IsActive      bool       `json:"is_active"`
	LeadMinutes   *int       `json:"lead_minutes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toMedicationResponse(med *domain.Medication) medicationResponse {
	times := med.ScheduleTimes
	if times == nil {
		times = []string{}
	}
	return medicationResponse{
		ID:            med.ID,
		Name:          med.Name,
		Description:   med.Description,
		DosageAmount:  med.DosageAmount,
		DosageUnit:    med.DosageUnit,
		Frequency:     med.Frequency,
		ScheduleTimes: times,
		Instructions:  med.Instructions,
		StartDate:     med.StartDate,
		EndDate:       med.EndDate,
		Notes:         med.Notes,
		IconType:      med.IconType,
		IsActive:      med.IsActive,
		LeadMinutes:   med.LeadMinutes,
		CreatedAt:     med.CreatedAt,
		UpdatedAt:     med.UpdatedAt,
	}
}

// MedicationHandler serves medication CRUD and keeps alarms in step with
// every change.
type MedicationHandler struct {
	medications domain.MedicationRepository
	alarms      AlarmService
	clock       domain.Clock
}

func NewMedicationHandler(medications domain.MedicationRepository, alarms AlarmService, clock domain.Clock) *MedicationHandler {
	return &MedicationHandler{
		medications: medications,
		alarms:      alarms,
		clock:       clock,
	}
}

func (h *MedicationHandler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()

	meds, err := h.medications.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list medications", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	resp := make([]medicationResponse, 0, len(meds))
	for _, med := range meds {
		resp = append(resp, toMedicationResponse(med))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MedicationHandler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	med, err := h.medications.GetByID(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMedicationResponse(med))
}

func (h *MedicationHandler) HandleCreate(c *gin.Context) {
	ctx := c.Request.Context()

	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid medication body")
		return
	}

	med := &domain.Medication{
		StartDate: h.clock.Now(),
		IsActive:  true,
	}
	req.apply(med)

	if err := h.medications.Create(ctx, med); err != nil {
		slog.WarnContext(ctx, "failed to create medication", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	slog.InfoContext(ctx, "medication created",
		slog.Int64("medication_id", med.ID),
		slog.Any("schedule_times", med.ScheduleTimes),
	)

	h.reschedule(c, med.ID)
	c.JSON(http.StatusCreated, toMedicationResponse(med))
}

// HandleUpdate cancels the alarms of the previous schedule times before the
// updated medication is rescheduled.
func (h *MedicationHandler) HandleUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid medication body")
		return
	}

	existing, err := h.medications.GetByID(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	oldTimes := existing.ScheduleTimes

	updated := *existing
	req.apply(&updated)

	if err := h.medications.Update(ctx, &updated); err != nil {
		slog.WarnContext(ctx, "failed to update medication",
			slog.Int64("medication_id", id),
			slog.String("error", err.Error()),
		)
		respondServiceError(c, err)
		return
	}

	if _, err := h.alarms.CancelMedicationAlarms(ctx, id, oldTimes); err != nil {
		slog.WarnContext(ctx, "failed to cancel previous alarms",
			slog.Int64("medication_id", id),
			slog.String("error", err.Error()),
		)
	}

	h.reschedule(c, id)
	c.JSON(http.StatusOK, toMedicationResponse(&updated))
}

func (h *MedicationHandler) HandleDelete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if _, err := h.alarms.CancelMedicationAlarms(ctx, id, nil); err != nil {
		slog.WarnContext(ctx, "failed to cancel alarms of deleted medication",
			slog.Int64("medication_id", id),
			slog.String("error", err.Error()),
		)
	}

	if err := h.medications.Delete(ctx, id); err != nil {
		respondServiceError(c, err)
		return
	}

	slog.InfoContext(ctx, "medication deleted", slog.Int64("medication_id", id))
	c.Status(http.StatusNoContent)
}

// reschedule failures do not fail the write; the maintenance run retries.
func (h *MedicationHandler) reschedule(c *gin.Context, id int64) {
	ctx := c.Request.Context()

	result, err := h.alarms.RescheduleMedication(ctx, id)
	if err != nil {
		slog.WarnContext(ctx, "failed to reschedule medication alarms",
			slog.Int64("medication_id", id),
			slog.String("error", err.Error()),
		)
		return
	}

	slog.DebugContext(ctx, "medication alarms rescheduled",
		slog.Int64("medication_id", id),
		slog.Int("scheduled", result.Scheduled),
		slog.Int("skipped", result.Skipped),
	)
}

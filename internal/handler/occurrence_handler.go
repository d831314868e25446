package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/emersion/go-ical"
	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/alarm"
)

const (
	calendarProductID = "-//Primind//Medication Reminder//EN"
	calendarEventSpan = 5 * time.Minute
)

type occurrenceResponse struct {
	Key            string    `json:"key"`
	MedicationID   int64     `json:"medication_id"`
	MedicationName string    `json:"medication_name,omitempty"`
	TimeOfDay      string    `json:"time_of_day"`
	Date           string    `json:"date"`
	FireAt         time.Time `json:"fire_at"`
	Kind           string    `json:"kind"`
}

func toOccurrenceResponses(occs []alarm.PlannedOccurrence) []occurrenceResponse {
	resp := make([]occurrenceResponse, 0, len(occs))
	for _, occ := range occs {
		resp = append(resp, occurrenceResponse{
			Key:            occ.Key.String(),
			MedicationID:   occ.MedicationID,
			MedicationName: occ.MedicationName,
			TimeOfDay:      occ.TimeOfDay.String(),
			Date:           occ.Date.String(),
			FireAt:         occ.FireAt,
			Kind:           occ.Kind.String(),
		})
	}
	return resp
}

// OccurrenceHandler previews planned reminders without scheduling them.
type OccurrenceHandler struct {
	alarms AlarmService
	clock  domain.Clock
}

func NewOccurrenceHandler(alarms AlarmService, clock domain.Clock) *OccurrenceHandler {
	return &OccurrenceHandler{
		alarms: alarms,
		clock:  clock,
	}
}

func (h *OccurrenceHandler) HandleMedicationOccurrences(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	now, err := parseNow(c, h.clock)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	occs, err := h.alarms.PreviewMedication(ctx, id, now)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOccurrenceResponses(occs))
}

// HandleCalendar exports the upcoming reminders of all active medications
// as an iCalendar feed.
func (h *OccurrenceHandler) HandleCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	now, err := parseNow(c, h.clock)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	occs, err := h.alarms.PreviewOccurrences(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to preview occurrences", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(occurrencesToICS(occs, now)); err != nil {
		slog.ErrorContext(ctx, "failed to encode calendar", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "encode_error", "failed to encode calendar")
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func occurrencesToICS(occs []alarm.PlannedOccurrence, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, calendarProductID)

	for _, occ := range occs {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, occ.Key.String()+"@medication-reminder")
		event.Props.SetText(ical.PropSummary, occ.MedicationName+" "+occ.TimeOfDay.String())
		event.Props.SetText(ical.PropDescription, "Dose on "+occ.Date.String()+" ("+occ.Kind.String()+")")
		event.Props.SetDateTime(ical.PropDateTimeStart, occ.FireAt.UTC())
		event.Props.SetDateTime(ical.PropDateTimeEnd, occ.FireAt.Add(calendarEventSpan).UTC())
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())

		cal.Children = append(cal.Children, event.Component)
	}

	return cal
}

package alarmqueue

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

const (
	precisionHeader     = "X-Alarm-Precision"
	occurrenceKeyHeader = "X-Occurrence-Key"
)

type AlarmTask struct {
	Name   string    `json:"-"`
	FireAt time.Time `json:"-"`
	Exact  bool      `json:"-"`

	Payload FirePayload `json:"payload"`
}

// FirePayload is the body posted back to the fire endpoint.
type FirePayload struct {
	Key          string `json:"key"`
	MedicationID int64  `json:"medication_id"`
	TimeOfDay    string `json:"time_of_day"`
	Date         string `json:"date"`
	Kind         string `json:"kind"`
}

// NewAlarmTask builds the task for occ. The name embeds the fire instant so
// a replaced alarm never reuses the name of the one it replaces.
func NewAlarmTask(key domain.OccurrenceKey, occ domain.Occurrence, exact bool) *AlarmTask {
	return &AlarmTask{
		Name:   TaskName(key, occ.FireAt),
		FireAt: occ.FireAt,
		Exact:  exact,
		Payload: FirePayload{
			Key:          key.String(),
			MedicationID: occ.MedicationID,
			TimeOfDay:    occ.TimeOfDay.String(),
			Date:         occ.Date.String(),
			Kind:         occ.Kind.String(),
		},
	}
}

func TaskName(key domain.OccurrenceKey, fireAt time.Time) string {
	return fmt.Sprintf("%s-%d", key, fireAt.Unix())
}

func (t *AlarmTask) Precision() domain.AlarmPrecision {
	if t.Exact {
		return domain.PrecisionExact
	}
	return domain.PrecisionBestEffort
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}

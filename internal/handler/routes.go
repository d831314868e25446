package handler

import "github.com/gin-gonic/gin"

type Routes struct {
	Alarms      *AlarmHandler
	Medications *MedicationHandler
	Settings    *SettingsHandler
	Occurrences *OccurrenceHandler
}

func (rt *Routes) Register(r gin.IRouter) {
	r.POST("/alarms/schedule", rt.Alarms.HandleScheduleAll)
	r.DELETE("/alarms", rt.Alarms.HandleCancelAll)
	r.POST("/alarms/fire", rt.Alarms.HandleFire)

	r.GET("/medications", rt.Medications.HandleList)
	r.POST("/medications", rt.Medications.HandleCreate)
	r.GET("/medications/:id", rt.Medications.HandleGet)
	r.PUT("/medications/:id", rt.Medications.HandleUpdate)
	r.DELETE("/medications/:id", rt.Medications.HandleDelete)
	r.POST("/medications/:id/alarms", rt.Alarms.HandleScheduleMedication)
	r.DELETE("/medications/:id/alarms", rt.Alarms.HandleCancelMedication)
	r.GET("/medications/:id/occurrences", rt.Occurrences.HandleMedicationOccurrences)
	r.GET("/occurrences.ics", rt.Occurrences.HandleCalendar)

	r.GET("/settings", rt.Settings.HandleGet)
	r.PUT("/settings", rt.Settings.HandlePut)
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type settingsPayload struct {
	NotificationsEnabled bool   `json:"notifications_enabled"`
	LeadMinutes          int    `json:"lead_minutes"`
	UserName             string `json:"user_name"`
	DarkMode             bool   `json:"dark_mode"`
}

type SettingsHandler struct {
	settings domain.SettingsRepository
	alarms   AlarmService
	clock    domain.Clock
}

func NewSettingsHandler(settings domain.SettingsRepository, alarms AlarmService, clock domain.Clock) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		alarms:   alarms,
		clock:    clock,
	}
}

func (h *SettingsHandler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.settings.Get(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read settings", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settingsPayload{
		NotificationsEnabled: s.NotificationsEnabled,
		LeadMinutes:          s.LeadMinutes,
		UserName:             s.UserName,
		DarkMode:             s.DarkMode,
	})
}

// HandlePut stores the settings and re-plans every alarm, which cancels
// them all when notifications were switched off.
func (h *SettingsHandler) HandlePut(c *gin.Context) {
	ctx := c.Request.Context()

	var req settingsPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid settings body")
		return
	}

	s := &domain.Settings{
		NotificationsEnabled: req.NotificationsEnabled,
		LeadMinutes:          req.LeadMinutes,
		UserName:             req.UserName,
		DarkMode:             req.DarkMode,
	}
	if s.UserName == "" {
		s.UserName = domain.DefaultUserName
	}
	if err := s.Validate(); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.settings.Save(ctx, s); err != nil {
		slog.ErrorContext(ctx, "failed to save settings", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	slog.InfoContext(ctx, "settings updated",
		slog.Bool("notifications_enabled", s.NotificationsEnabled),
		slog.Int("lead_minutes", s.LeadMinutes),
	)

	result, err := h.alarms.ScheduleAllAlarms(ctx, h.clock.Now())
	if err != nil {
		slog.WarnContext(ctx, "re-plan after settings change finished with errors",
			slog.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": settingsPayload{
			NotificationsEnabled: s.NotificationsEnabled,
			LeadMinutes:          s.LeadMinutes,
			UserName:             s.UserName,
			DarkMode:             s.DarkMode,
		},
		"schedule": result,
	})
}

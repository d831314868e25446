package domain

import "fmt"

const (
	DefaultLeadMinutes = 15
	DefaultUserName    = "User"
)

type Settings struct {
	NotificationsEnabled bool
	LeadMinutes          int
	UserName             string
	DarkMode             bool
}

func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		LeadMinutes:          DefaultLeadMinutes,
		UserName:             DefaultUserName,
	}
}

func (s *Settings) Validate() error {
	if s.LeadMinutes < 0 {
		return fmt.Errorf("%w: lead minutes must not be negative", ErrInvalidSettings)
	}
	if s.LeadMinutes > 24*60 {
		return fmt.Errorf("%w: lead minutes must not exceed one day", ErrInvalidSettings)
	}
	return nil
}

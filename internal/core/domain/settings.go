package domain

import "time"

// Settings are per-user console preferences.
type Settings struct {
	UserID              string    `json:"user_id" bson:"user_id"`
	PageSize            int       `json:"page_size" bson:"page_size"`
	NotificationSeconds int       `json:"notification_seconds" bson:"notification_seconds"`
	DefaultDashboard    string    `json:"default_dashboard" bson:"default_dashboard"`
	UpdatedAt           time.Time `json:"updated_at" bson:"updated_at"`
}

// DefaultSettings returns the preferences used before a user saves any.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:              userID,
		PageSize:            10,
		NotificationSeconds: 5,
		DefaultDashboard:    "overview",
	}
}

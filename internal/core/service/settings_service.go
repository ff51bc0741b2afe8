package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// SettingsInput is a partial update; zero fields keep the stored value.
type SettingsInput struct {
	PageSize            int    `json:"page_size" validate:"omitempty,min=5,max=100"`
	NotificationSeconds int    `json:"notification_seconds" validate:"omitempty,min=1,max=60"`
	DefaultDashboard    string `json:"default_dashboard" validate:"omitempty,oneof=overview analytics leads visitors"`
}

// PreferenceLookup resolves the settings that apply to the request's user.
type PreferenceLookup interface {
	Effective(ctx context.Context) domain.Settings
}

type SettingsService struct {
	repo   ports.SettingsRepository
	notify *NotificationService
	log    zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, notify *NotificationService, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, notify: notify, log: log}
}

// Get returns the preferences of the signed-in user, or the defaults when
// nothing was saved yet.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	sess, ok := domain.SessionFromContext(ctx)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	stored, err := s.repo.FindByUser(ctx, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if stored == nil {
		def := domain.DefaultSettings(sess.User.ID)
		return &def, nil
	}
	return stored, nil
}

// Effective returns the signed-in user's settings, falling back to the
// defaults when there is no session or the store cannot be read.
func (s *SettingsService) Effective(ctx context.Context) domain.Settings {
	sess, ok := domain.SessionFromContext(ctx)
	if !ok {
		return domain.DefaultSettings("")
	}
	stored, err := s.repo.FindByUser(ctx, sess.User.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", sess.User.ID).Msg("settings unavailable, using defaults")
		return domain.DefaultSettings(sess.User.ID)
	}
	if stored == nil {
		return domain.DefaultSettings(sess.User.ID)
	}
	return *stored
}

func (s *SettingsService) Update(ctx context.Context, in SettingsInput) (*domain.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if in.PageSize != 0 {
		current.PageSize = in.PageSize
	}
	if in.NotificationSeconds != 0 {
		current.NotificationSeconds = in.NotificationSeconds
	}
	if in.DefaultDashboard != "" {
		current.DefaultDashboard = in.DefaultDashboard
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, current); err != nil {
		s.notify.Error(ctx, "Failed to save settings")
		return nil, fmt.Errorf("save settings: %w", err)
	}
	s.log.Info().Str("user_id", current.UserID).Msg("settings saved")
	s.notify.Success(ctx, "Settings saved successfully")
	return current, nil
}

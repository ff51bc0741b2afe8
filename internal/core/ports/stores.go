package ports

import (
	"context"
	"time"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// SessionStore persists console sessions.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound when the session is absent or expired.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// NotificationStore keeps the per-session notification queue in insertion order.
type NotificationStore interface {
	Append(ctx context.Context, sessionID string, n domain.Notification) error
	List(ctx context.Context, sessionID string) ([]domain.Notification, error)
	// Remove reports whether a notification with id was present.
	Remove(ctx context.Context, sessionID, id string) (bool, error)
	Clear(ctx context.Context, sessionID string) error
}

// ExportStore keeps export job state and the rendered files.
type ExportStore interface {
	SaveJob(ctx context.Context, job *domain.ExportJob) error
	GetJob(ctx context.Context, id string) (*domain.ExportJob, error)
	SaveFile(ctx context.Context, id string, data []byte) error
	GetFile(ctx context.Context, id string) ([]byte, error)
}

// ExportDedup guards against queuing the same export twice while one is pending.
type ExportDedup interface {
	// Acquire returns false when key is already held.
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// SettingsRepository persists per-user console preferences.
type SettingsRepository interface {
	// FindByUser returns nil, nil when the user has never saved settings.
	FindByUser(ctx context.Context, userID string) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

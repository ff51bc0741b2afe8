package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/pkg/metrics"
)

const defaultNotificationTTL = 5 * time.Second

// NotificationService is the per-session notification queue. The session is
// taken from the context, so callers never pass it around.
type NotificationService struct {
	store ports.NotificationStore
	ttl   time.Duration
	prefs PreferenceLookup
	now   func() time.Time
	log   zerolog.Logger
}

// NewNotificationService returns a queue whose entries auto-dismiss after ttl.
// A zero or negative ttl falls back to five seconds.
func NewNotificationService(store ports.NotificationStore, ttl time.Duration, log zerolog.Logger) *NotificationService {
	if ttl <= 0 {
		ttl = defaultNotificationTTL
	}
	return &NotificationService{store: store, ttl: ttl, now: time.Now, log: log}
}

// UsePreferences lets each user's NotificationSeconds setting override the
// queue-wide ttl.
func (s *NotificationService) UsePreferences(p PreferenceLookup) {
	s.prefs = p
}

func (s *NotificationService) ttlFor(ctx context.Context) time.Duration {
	if s.prefs != nil {
		if secs := s.prefs.Effective(ctx).NotificationSeconds; secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return s.ttl
}

// Add appends a notification to the queue of the session in ctx. Repeated
// identical messages are all queued.
func (s *NotificationService) Add(ctx context.Context, typ domain.NotificationType, message string) (*domain.Notification, error) {
	sess, ok := domain.SessionFromContext(ctx)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	now := s.now().UTC()
	n := domain.Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttlFor(ctx)),
	}
	if err := s.store.Append(ctx, sess.ID, n); err != nil {
		return nil, err
	}

	metrics.NotificationsTotal.WithLabelValues(string(typ)).Inc()
	return &n, nil
}

func (s *NotificationService) Success(ctx context.Context, message string) {
	s.addQuietly(ctx, domain.NotifySuccess, message)
}

func (s *NotificationService) Error(ctx context.Context, message string) {
	s.addQuietly(ctx, domain.NotifyError, message)
}

func (s *NotificationService) Warning(ctx context.Context, message string) {
	s.addQuietly(ctx, domain.NotifyWarning, message)
}

func (s *NotificationService) Info(ctx context.Context, message string) {
	s.addQuietly(ctx, domain.NotifyInfo, message)
}

// addQuietly backs the sugar methods: a lost notification is logged, never
// allowed to fail the operation that produced it.
func (s *NotificationService) addQuietly(ctx context.Context, typ domain.NotificationType, message string) {
	if _, err := s.Add(ctx, typ, message); err != nil {
		s.log.Warn().Err(err).Str("type", string(typ)).Msg("failed to queue notification")
	}
}

// List returns the live notifications in insertion order and prunes the
// expired ones.
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	sess, ok := domain.SessionFromContext(ctx)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	all, err := s.store.List(ctx, sess.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	live := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if n.Expired(now) {
			if _, err := s.store.Remove(ctx, sess.ID, n.ID); err != nil {
				s.log.Debug().Err(err).Str("notification_id", n.ID).Msg("failed to prune notification")
			}
			continue
		}
		live = append(live, n)
	}
	return live, nil
}

// Remove dismisses one notification. Dismissing an unknown id is a no-op.
func (s *NotificationService) Remove(ctx context.Context, id string) error {
	sess, ok := domain.SessionFromContext(ctx)
	if !ok {
		return domain.ErrSessionNotFound
	}
	_, err := s.store.Remove(ctx, sess.ID, id)
	return err
}

// Clear drops the whole queue of a session; used on logout.
func (s *NotificationService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

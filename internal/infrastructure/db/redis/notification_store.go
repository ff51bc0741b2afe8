package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// NotificationStore keeps each session's queue as a Redis list, oldest first.
// Key format: notifications:<session_id>
type NotificationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNotificationStore returns a store whose lists expire after ttl of
// inactivity, so queues of abandoned sessions do not linger.
func NewNotificationStore(client *redis.Client, ttl time.Duration) *NotificationStore {
	return &NotificationStore{client: client, ttl: ttl}
}

func (s *NotificationStore) Append(ctx context.Context, sessionID string, n domain.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	key := notificationsKey(sessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, b)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append notification: %w", err)
	}
	return nil
}

func (s *NotificationStore) List(ctx context.Context, sessionID string) ([]domain.Notification, error) {
	raw, err := s.client.LRange(ctx, notificationsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// Remove deletes the entry whose id matches. List entries are removed by
// value, so the stored JSON is looked up first.
func (s *NotificationStore) Remove(ctx context.Context, sessionID, id string) (bool, error) {
	key := notificationsKey(sessionID)
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return false, fmt.Errorf("remove notification: %w", err)
	}

	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil || n.ID != id {
			continue
		}
		removed, err := s.client.LRem(ctx, key, 1, item).Result()
		if err != nil {
			return false, fmt.Errorf("remove notification: %w", err)
		}
		return removed > 0, nil
	}
	return false, nil
}

func (s *NotificationStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, notificationsKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}

func notificationsKey(sessionID string) string {
	return "notifications:" + sessionID
}

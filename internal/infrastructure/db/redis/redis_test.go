package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSessionStore_RoundTripAndExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	sess := &domain.Session{
		ID:    "s1",
		Token: "backend-token",
		User:  domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleCompanyAdmin, CompanyID: "c1"},
	}
	require.NoError(t, store.Save(ctx, sess, time.Minute))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", got.Token)
	assert.True(t, got.User.IsCompanyAdmin())

	mr.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "s1"}, time.Minute))
	require.NoError(t, store.Delete(ctx, "s1"))
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting a missing session is not an error.
	assert.NoError(t, store.Delete(ctx, "nope"))
}

func TestNotificationStore_OrderAndRemove(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewNotificationStore(client, time.Hour)
	ctx := context.Background()

	for _, id := range []string{"n1", "n2", "n3"} {
		require.NoError(t, store.Append(ctx, "s1", domain.Notification{ID: id, Type: domain.NotifyInfo, Message: id}))
	}

	list, err := store.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "n1", list[0].ID)
	assert.Equal(t, "n3", list[2].ID)

	removed, err := store.Remove(ctx, "s1", "n2")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Remove(ctx, "s1", "n2")
	require.NoError(t, err)
	assert.False(t, removed)

	list, err = store.List(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"n1", "n3"}, []string{list[0].ID, list[1].ID})

	require.NoError(t, store.Clear(ctx, "s1"))
	list, err = store.List(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExportStore_JobsAndFiles(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewExportStore(client, time.Hour)
	ctx := context.Background()

	job := &domain.ExportJob{ID: "e1", SessionID: "s1", Resource: domain.ExportLeads, Status: domain.ExportPending}
	require.NoError(t, store.SaveJob(ctx, job))

	got, err := store.GetJob(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, domain.ExportPending, got.Status)

	_, err = store.GetFile(ctx, "e1")
	assert.ErrorIs(t, err, domain.ErrExportNotFound)

	require.NoError(t, store.SaveFile(ctx, "e1", []byte("xlsx")))
	data, err := store.GetFile(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)

	_, err = store.GetJob(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrExportNotFound)
}

func TestDedupChecker(t *testing.T) {
	mr, client := newTestRedis(t)
	dedup := NewDedupChecker(client, time.Minute)
	ctx := context.Background()

	ok, err := dedup.Acquire(ctx, "export:s1:leads")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dedup.Acquire(ctx, "export:s1:leads")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, dedup.Release(ctx, "export:s1:leads"))
	ok, err = dedup.Acquire(ctx, "export:s1:leads")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = dedup.Acquire(ctx, "export:s1:leads")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console state store at 127.0.0.1:1 unreachable")
}

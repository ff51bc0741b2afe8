package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

func TestSettingsService_DefaultsThenUpdate(t *testing.T) {
	repo := newMemSettings()
	notify, store := newTestNotifier()
	svc := NewSettingsService(repo, notify, zerolog.Nop())
	ctx := sessionCtx(domain.RoleEmployee)

	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings("u1"), *s)

	updated, err := svc.Update(ctx, SettingsInput{PageSize: 25})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.PageSize)
	assert.Equal(t, 5, updated.NotificationSeconds)
	assert.Equal(t, "overview", updated.DefaultDashboard)
	assert.False(t, updated.UpdatedAt.IsZero())

	s, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, s.PageSize)
	assert.Equal(t, []string{"success:Settings saved successfully"}, store.messages("s1"))
}

func TestSettingsService_RequiresSession(t *testing.T) {
	notify, _ := newTestNotifier()
	svc := NewSettingsService(newMemSettings(), notify, zerolog.Nop())
	_, err := svc.Get(context.Background())
	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

type failingSettings struct{}

func (failingSettings) FindByUser(context.Context, string) (*domain.Settings, error) {
	return nil, errors.New("mongo down")
}

func (failingSettings) Upsert(context.Context, *domain.Settings) error { return nil }

func TestSettingsService_Effective(t *testing.T) {
	notify, _ := newTestNotifier()
	repo := newMemSettings()
	svc := NewSettingsService(repo, notify, zerolog.Nop())

	assert.Equal(t, domain.DefaultSettings(""), svc.Effective(context.Background()))

	ctx := sessionCtx(domain.RoleEmployee)
	assert.Equal(t, 10, svc.Effective(ctx).PageSize)

	repo.byUser["u1"] = domain.Settings{UserID: "u1", PageSize: 50, NotificationSeconds: 60}
	assert.Equal(t, 50, svc.Effective(ctx).PageSize)

	broken := NewSettingsService(failingSettings{}, notify, zerolog.Nop())
	assert.Equal(t, domain.DefaultSettings("u1"), broken.Effective(ctx))
}

func TestSavedSettings_DriveNotificationLifetime(t *testing.T) {
	store := newMemNotifications()
	notify := NewNotificationService(store, 5*time.Second, zerolog.Nop())
	settings := NewSettingsService(newMemSettings(), notify, zerolog.Nop())
	notify.UsePreferences(settings)

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	notify.now = func() time.Time { return clock }

	ctx := sessionCtx(domain.RoleCompanyAdmin)
	_, err := settings.Update(ctx, SettingsInput{NotificationSeconds: 60, PageSize: 50})
	require.NoError(t, err)

	n, err := notify.Add(ctx, domain.NotifyInfo, "Import finished")
	require.NoError(t, err)
	assert.Equal(t, clock.Add(time.Minute), n.ExpiresAt)

	clock = clock.Add(10 * time.Second)
	live, err := notify.List(ctx)
	require.NoError(t, err)
	assert.Len(t, live, 2)

	clock = clock.Add(time.Minute)
	live, err = notify.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, live)
}

func TestSavedSettings_DrivePageSize(t *testing.T) {
	notify, _ := newTestNotifier()
	repo := newMemSettings()
	settings := NewSettingsService(repo, notify, zerolog.Nop())
	backend := &stubBackend{}
	leads := NewLeadService(backend, backend, notify, NewSuperseder(), zerolog.Nop())
	leads.UsePreferences(settings)
	ctx := sessionCtx(domain.RoleCompanyAdmin)

	_, err := leads.List(ctx, ports.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 10, backend.lastQuery.Limit)

	repo.byUser["u1"] = domain.Settings{UserID: "u1", PageSize: 50}
	_, err = leads.List(ctx, ports.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 50, backend.lastQuery.Limit)

	_, err = leads.List(ctx, ports.ListQuery{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 20, backend.lastQuery.Limit)
}

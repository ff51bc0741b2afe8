package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// resourceBase is embedded by every resource service. It owns the
// superseded-fetch bookkeeping and the success/error notifications that
// follow each backend call.
type resourceBase struct {
	name    string
	notify  *NotificationService
	flights *Superseder
	prefs   PreferenceLookup
	log     zerolog.Logger
}

func newResourceBase(name string, notify *NotificationService, flights *Superseder, log zerolog.Logger) resourceBase {
	if flights == nil {
		flights = NewSuperseder()
	}
	return resourceBase{
		name:    name,
		notify:  notify,
		flights: flights,
		log:     log.With().Str("resource", name).Logger(),
	}
}

// UsePreferences makes list defaults follow the signed-in user's settings.
func (b *resourceBase) UsePreferences(p PreferenceLookup) {
	b.prefs = p
}

// page normalizes the requested page, defaulting the size to the user's
// preferred page size.
func (b resourceBase) page(ctx context.Context, page, limit int) (int, int) {
	fallback := defaultPageSize
	if b.prefs != nil {
		if size := b.prefs.Effective(ctx).PageSize; size > 0 {
			fallback = size
		}
	}
	return normalizePage(page, limit, fallback)
}

// beginList registers a list fetch for (session, resource). A fetch still in
// flight for the same key is cancelled.
func (b resourceBase) beginList(ctx context.Context) (context.Context, func()) {
	key := b.name
	if sess, ok := domain.SessionFromContext(ctx); ok {
		key = sess.ID + ":" + b.name
	}
	return b.flights.Begin(ctx, key)
}

// listFailed converts a list error. A superseded fetch is reported as
// domain.ErrSuperseded and does not notify.
func (b resourceBase) listFailed(ctx context.Context, err error) error {
	if Superseded(ctx) {
		b.log.Debug().Msg("list fetch superseded")
		return domain.ErrSuperseded
	}
	return b.failed(ctx, "list", err)
}

// failed logs err, queues an error notification and wraps err.
func (b resourceBase) failed(ctx context.Context, action string, err error) error {
	b.log.Warn().Err(err).Str("action", action).Msg("backend call failed")
	if b.notify != nil && notifiable(err) {
		b.notify.Error(ctx, domain.UserMessage(err))
	}
	return fmt.Errorf("%s %s: %w", action, b.name, err)
}

func (b resourceBase) succeeded(ctx context.Context, message string) {
	if b.notify != nil {
		b.notify.Success(ctx, message)
	}
}

// notifiable filters out errors with nobody left to read the notification:
// a 401 has already cleared the session and a cancelled request has no
// caller.
func notifiable(err error) bool {
	return !errors.Is(err, domain.ErrUnauthorized) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, domain.ErrSuperseded)
}

// normalizePage applies the list bounds shared by every resource page.
func normalizePage(page, limit, fallback int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = fallback
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

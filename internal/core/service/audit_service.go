package service

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// AuditEntry is an audit log row with its relative time label.
type AuditEntry struct {
	domain.AuditLog
	When string `json:"when"`
}

// AuditService backs the Audit Logs page.
type AuditService struct {
	resourceBase
	backend ports.AuditGateway
	now     func() time.Time
}

func NewAuditService(backend ports.AuditGateway, notify *NotificationService, flights *Superseder, log zerolog.Logger) *AuditService {
	return &AuditService{
		resourceBase: newResourceBase("audit-logs", notify, flights, log),
		backend:      backend,
		now:          time.Now,
	}
}

// List fetches one page of audit logs. Company admins only ever see their
// own company's trail.
func (s *AuditService) List(ctx context.Context, q ports.ListQuery) (*ports.Page[AuditEntry], error) {
	q.Page, q.Limit = s.page(ctx, q.Page, q.Limit)
	if companyID := sessionCompany(ctx); companyID != "" {
		q.CompanyID = companyID
	}

	ctx, done := s.beginList(ctx)
	defer done()

	page, err := s.backend.ListAuditLogs(ctx, q)
	if err != nil {
		return nil, s.listFailed(ctx, err)
	}

	now := s.now()
	entries := make([]AuditEntry, 0, len(page.Items))
	for _, l := range page.Items {
		entries = append(entries, AuditEntry{AuditLog: l, When: relativeTime(l.CreatedAt, now)})
	}
	return &ports.Page[AuditEntry]{
		Items:      entries,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}, nil
}

func relativeTime(t, now time.Time) string {
	if t.IsZero() {
		return domain.NotAvailable
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/analytics"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// lookupPageSize is the page size used when scanning for a single visitor.
const lookupPageSize = 100

// VisitorDetail is the visitor detail view.
type VisitorDetail struct {
	domain.Visitor
	ProfileCompleteness int `json:"profile_completeness"`
}

func newVisitorDetail(v domain.Visitor) VisitorDetail {
	return VisitorDetail{Visitor: v, ProfileCompleteness: analytics.ProfileCompleteness(v)}
}

// VisitorService backs the Visitors page.
type VisitorService struct {
	resourceBase
	backend ports.VisitorGateway
}

func NewVisitorService(backend ports.VisitorGateway, notify *NotificationService, flights *Superseder, log zerolog.Logger) *VisitorService {
	return &VisitorService{
		resourceBase: newResourceBase("visitors", notify, flights, log),
		backend:      backend,
	}
}

func (s *VisitorService) List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Visitor], error) {
	q.Page, q.Limit = s.page(ctx, q.Page, q.Limit)

	ctx, done := s.beginList(ctx)
	defer done()

	page, err := s.backend.ListVisitors(ctx, q)
	if err != nil {
		return nil, s.listFailed(ctx, err)
	}
	return page, nil
}

// SearchByPhone returns the visitors registered with phone.
func (s *VisitorService) SearchByPhone(ctx context.Context, phone string) ([]VisitorDetail, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return []VisitorDetail{}, nil
	}

	ctx, done := s.flights.Begin(ctx, s.searchKey(ctx))
	defer done()

	found, err := s.backend.SearchVisitorsByPhone(ctx, phone)
	if err != nil {
		return nil, s.listFailed(ctx, err)
	}
	out := make([]VisitorDetail, 0, len(found))
	for _, v := range found {
		out = append(out, newVisitorDetail(v))
	}
	return out, nil
}

func (s *VisitorService) searchKey(ctx context.Context) string {
	if sess, ok := domain.SessionFromContext(ctx); ok {
		return sess.ID + ":visitors/search"
	}
	return "visitors/search"
}

// Get finds a visitor by id. The backend has no get-by-id endpoint, so the
// list is scanned page by page.
func (s *VisitorService) Get(ctx context.Context, id string) (*VisitorDetail, error) {
	q := ports.ListQuery{Page: 1, Limit: lookupPageSize}
	for {
		page, err := s.backend.ListVisitors(ctx, q)
		if err != nil {
			return nil, s.failed(ctx, "get", err)
		}
		for _, v := range page.Items {
			if v.ID == id {
				d := newVisitorDetail(v)
				return &d, nil
			}
		}
		if len(page.Items) == 0 || q.Page >= page.TotalPages {
			break
		}
		q.Page++
	}
	return nil, s.failed(ctx, "get", domain.ErrNotFound)
}

func (s *VisitorService) Create(ctx context.Context, in ports.VisitorInput) (*domain.Visitor, error) {
	v, err := s.backend.CreateVisitor(ctx, in)
	if err != nil {
		return nil, s.failed(ctx, "create", err)
	}
	s.log.Info().Str("visitor_id", v.ID).Msg("visitor created")
	s.succeeded(ctx, "Visitor created successfully")
	return v, nil
}

func (s *VisitorService) Update(ctx context.Context, id string, in ports.VisitorInput) (*domain.Visitor, error) {
	v, err := s.backend.UpdateVisitor(ctx, id, in)
	if err != nil {
		return nil, s.failed(ctx, "update", err)
	}
	s.log.Info().Str("visitor_id", id).Msg("visitor updated")
	s.succeeded(ctx, "Visitor updated successfully")
	return v, nil
}

func (s *VisitorService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteVisitor(ctx, id); err != nil {
		return s.failed(ctx, "delete", err)
	}
	s.log.Info().Str("visitor_id", id).Msg("visitor deleted")
	s.succeeded(ctx, "Visitor deleted successfully")
	return nil
}

func (s *VisitorService) Stats(ctx context.Context) (*ports.VisitorStats, error) {
	st, err := s.backend.VisitorStats(ctx)
	if err != nil {
		return nil, s.failed(ctx, "stats", err)
	}
	return st, nil
}

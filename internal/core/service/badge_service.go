package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// BadgeService backs the Badge Mapping page.
type BadgeService struct {
	resourceBase
	backend ports.BadgeGateway
}

func NewBadgeService(backend ports.BadgeGateway, notify *NotificationService, flights *Superseder, log zerolog.Logger) *BadgeService {
	return &BadgeService{
		resourceBase: newResourceBase("badge-mappings", notify, flights, log),
		backend:      backend,
	}
}

func (s *BadgeService) List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.BadgeMapping], error) {
	q.Page, q.Limit = s.page(ctx, q.Page, q.Limit)

	ctx, done := s.beginList(ctx)
	defer done()

	page, err := s.backend.ListBadgeMappings(ctx, q)
	if err != nil {
		return nil, s.listFailed(ctx, err)
	}
	return page, nil
}

func (s *BadgeService) Create(ctx context.Context, in ports.BadgeMappingInput) (*domain.BadgeMapping, error) {
	if companyID := sessionCompany(ctx); companyID != "" {
		in.CompanyID = companyID
	}
	m, err := s.backend.CreateBadgeMapping(ctx, in)
	if err != nil {
		return nil, s.failed(ctx, "create", err)
	}
	s.log.Info().Str("badge_id", m.BadgeID).Str("employee_id", m.EmployeeID).Msg("badge mapped")
	s.succeeded(ctx, "Badge mapping created successfully")
	return m, nil
}

func (s *BadgeService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteBadgeMapping(ctx, id); err != nil {
		return s.failed(ctx, "delete", err)
	}
	s.log.Info().Str("mapping_id", id).Msg("badge mapping deleted")
	s.succeeded(ctx, "Badge mapping deleted successfully")
	return nil
}

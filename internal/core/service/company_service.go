package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// CompanyService backs the platform admin's Companies page.
type CompanyService struct {
	resourceBase
	backend ports.CompanyGateway
}

func NewCompanyService(backend ports.CompanyGateway, notify *NotificationService, flights *Superseder, log zerolog.Logger) *CompanyService {
	return &CompanyService{
		resourceBase: newResourceBase("companies", notify, flights, log),
		backend:      backend,
	}
}

func (s *CompanyService) List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Company], error) {
	q.Page, q.Limit = s.page(ctx, q.Page, q.Limit)

	ctx, done := s.beginList(ctx)
	defer done()

	page, err := s.backend.ListCompanies(ctx, q)
	if err != nil {
		return nil, s.listFailed(ctx, err)
	}
	return page, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	c, err := s.backend.GetCompany(ctx, id)
	if err != nil {
		return nil, s.failed(ctx, "get", err)
	}
	return c, nil
}

func (s *CompanyService) Create(ctx context.Context, in ports.CompanyInput) (*domain.Company, error) {
	if in.Status == "" {
		in.Status = string(domain.CompanyActive)
	}
	c, err := s.backend.CreateCompany(ctx, in)
	if err != nil {
		return nil, s.failed(ctx, "create", err)
	}
	s.log.Info().Str("company_id", c.ID).Str("company_code", c.CompanyCode).Msg("company created")
	s.succeeded(ctx, "Company created successfully")
	return c, nil
}

func (s *CompanyService) Update(ctx context.Context, id string, in ports.CompanyInput) (*domain.Company, error) {
	c, err := s.backend.UpdateCompany(ctx, id, in)
	if err != nil {
		return nil, s.failed(ctx, "update", err)
	}
	s.log.Info().Str("company_id", id).Msg("company updated")
	s.succeeded(ctx, "Company updated successfully")
	return c, nil
}

// Deactivate flips the company to inactive. The backend has no dedicated
// endpoint; it is an update carrying only the status.
func (s *CompanyService) Deactivate(ctx context.Context, id string) (*domain.Company, error) {
	c, err := s.backend.UpdateCompany(ctx, id, ports.CompanyInput{Status: string(domain.CompanyInactive)})
	if err != nil {
		return nil, s.failed(ctx, "deactivate", err)
	}
	s.log.Info().Str("company_id", id).Msg("company deactivated")
	s.succeeded(ctx, "Company deactivated successfully")
	return c, nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	if err := s.backend.DeleteCompany(ctx, id); err != nil {
		return s.failed(ctx, "delete", err)
	}
	s.log.Info().Str("company_id", id).Msg("company deleted")
	s.succeeded(ctx, "Company deleted successfully")
	return nil
}

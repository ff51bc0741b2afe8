package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// EmployeeService backs the company admin's Employees page. Every call is
// scoped to the company of the signed-in admin.
type EmployeeService struct {
	resourceBase
	backend ports.UserGateway
}

func NewEmployeeService(backend ports.UserGateway, notify *NotificationService, flights *Superseder, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		resourceBase: newResourceBase("employees", notify, flights, log),
		backend:      backend,
	}
}

func (s *EmployeeService) List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Employee], error) {
	q.Page, q.Limit = s.page(ctx, q.Page, q.Limit)
	if companyID := sessionCompany(ctx); companyID != "" {
		q.CompanyID = companyID
	}

	ctx, done := s.beginList(ctx)
	defer done()

	page, err := s.backend.ListUsers(ctx, q)
	if err != nil {
		return nil, s.listFailed(ctx, err)
	}
	return page, nil
}

// Create adds an employee to the admin's company through the single
// POST /admin/users endpoint.
func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if in.Role == "" {
		in.Role = string(domain.RoleEmployee)
	}
	if companyID := sessionCompany(ctx); companyID != "" {
		in.CompanyID = companyID
	}

	e, err := s.backend.CreateUser(ctx, in)
	if err != nil {
		return nil, s.failed(ctx, "create", err)
	}
	s.log.Info().Str("user_id", e.ID).Str("company_id", e.CompanyID).Msg("employee created")
	s.succeeded(ctx, "Employee created successfully")
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	if companyID := sessionCompany(ctx); companyID != "" {
		in.CompanyID = companyID
	}
	e, err := s.backend.UpdateUser(ctx, id, in)
	if err != nil {
		return nil, s.failed(ctx, "update", err)
	}
	s.log.Info().Str("user_id", id).Msg("employee updated")
	s.succeeded(ctx, "Employee updated successfully")
	return e, nil
}

// Deactivate is the only destructive employee action.
func (s *EmployeeService) Deactivate(ctx context.Context, id string) (*domain.Employee, error) {
	e, err := s.backend.DeactivateUser(ctx, id)
	if err != nil {
		return nil, s.failed(ctx, "deactivate", err)
	}
	s.log.Info().Str("user_id", id).Msg("employee deactivated")
	s.succeeded(ctx, "Employee deactivated successfully")
	return e, nil
}

// CompanyAdminService backs the platform admin's Company Admins page.
type CompanyAdminService struct {
	resourceBase
	backend ports.UserGateway
}

func NewCompanyAdminService(backend ports.UserGateway, notify *NotificationService, flights *Superseder, log zerolog.Logger) *CompanyAdminService {
	return &CompanyAdminService{
		resourceBase: newResourceBase("company-admins", notify, flights, log),
		backend:      backend,
	}
}

func (s *CompanyAdminService) List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Employee], error) {
	q.Page, q.Limit = s.page(ctx, q.Page, q.Limit)

	ctx, done := s.beginList(ctx)
	defer done()

	page, err := s.backend.ListCompanyAdmins(ctx, q)
	if err != nil {
		return nil, s.listFailed(ctx, err)
	}
	return page, nil
}

func (s *CompanyAdminService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	in.Role = string(domain.RoleCompanyAdmin)
	e, err := s.backend.CreateCompanyAdmin(ctx, in)
	if err != nil {
		return nil, s.failed(ctx, "create", err)
	}
	s.log.Info().Str("user_id", e.ID).Str("company_id", e.CompanyID).Msg("company admin created")
	s.succeeded(ctx, "Company admin created successfully")
	return e, nil
}

func (s *CompanyAdminService) Update(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	e, err := s.backend.UpdateCompanyAdmin(ctx, id, in)
	if err != nil {
		return nil, s.failed(ctx, "update", err)
	}
	s.log.Info().Str("user_id", id).Msg("company admin updated")
	s.succeeded(ctx, "Company admin updated successfully")
	return e, nil
}

// sessionCompany returns the company of the signed-in user for tenant-scoped
// roles, or "" for platform admins.
func sessionCompany(ctx context.Context) string {
	sess, ok := domain.SessionFromContext(ctx)
	if !ok || sess.User.IsPlatformAdmin() {
		return ""
	}
	return sess.User.CompanyID
}

package ports

import (
	"context"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// ListQuery carries the search/filter/pagination state of a resource page.
// Zero values are omitted from the upstream query string.
type ListQuery struct {
	Search    string
	Status    string
	CompanyID string
	Interests string
	Action    string
	DateFrom  string
	DateTo    string
	Page      int // 1-based
	Limit     int
}

// Page is one page of a list endpoint.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// LoginResult is what the backend returns for valid credentials.
type LoginResult struct {
	Token string
	User  domain.User
}

// AuthGateway authenticates credentials against the backend.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// CompanyGateway wraps /admin/companies.
type CompanyGateway interface {
	ListCompanies(ctx context.Context, q ListQuery) (*Page[domain.Company], error)
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	CreateCompany(ctx context.Context, in CompanyInput) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id string, in CompanyInput) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id string) error
}

// UserGateway wraps /admin/users and /admin/company-admins.
type UserGateway interface {
	ListUsers(ctx context.Context, q ListQuery) (*Page[domain.Employee], error)
	CreateUser(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	UpdateUser(ctx context.Context, id string, in EmployeeInput) (*domain.Employee, error)
	DeactivateUser(ctx context.Context, id string) (*domain.Employee, error)

	ListCompanyAdmins(ctx context.Context, q ListQuery) (*Page[domain.Employee], error)
	CreateCompanyAdmin(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	UpdateCompanyAdmin(ctx context.Context, id string, in EmployeeInput) (*domain.Employee, error)
}

// VisitorGateway wraps /visitors.
type VisitorGateway interface {
	ListVisitors(ctx context.Context, q ListQuery) (*Page[domain.Visitor], error)
	SearchVisitorsByPhone(ctx context.Context, phone string) ([]domain.Visitor, error)
	CreateVisitor(ctx context.Context, in VisitorInput) (*domain.Visitor, error)
	UpdateVisitor(ctx context.Context, id string, in VisitorInput) (*domain.Visitor, error)
	DeleteVisitor(ctx context.Context, id string) error
	VisitorStats(ctx context.Context) (*VisitorStats, error)
}

// LeadGateway wraps /leads.
type LeadGateway interface {
	ListLeads(ctx context.Context, q ListQuery) (*Page[domain.Lead], error)
	GetLead(ctx context.Context, id string) (*domain.Lead, error)
	CreateLead(ctx context.Context, in LeadInput) (*domain.Lead, error)
	UpdateLead(ctx context.Context, id string, in LeadInput) (*domain.Lead, error)
	DeleteLead(ctx context.Context, id string) error
	LeadStats(ctx context.Context) (*LeadStats, error)
}

// BadgeGateway wraps /admin/badge-mappings.
type BadgeGateway interface {
	ListBadgeMappings(ctx context.Context, q ListQuery) (*Page[domain.BadgeMapping], error)
	CreateBadgeMapping(ctx context.Context, in BadgeMappingInput) (*domain.BadgeMapping, error)
	DeleteBadgeMapping(ctx context.Context, id string) error
}

// AuditGateway wraps /admin/audit-logs.
type AuditGateway interface {
	ListAuditLogs(ctx context.Context, q ListQuery) (*Page[domain.AuditLog], error)
}

// DashboardGateway wraps the backend's precomputed dashboard endpoints.
type DashboardGateway interface {
	PlatformOverview(ctx context.Context) (*PlatformOverview, error)
	CompanyDashboard(ctx context.Context) (*CompanyDashboard, error)
}

// Backend is the full upstream contract.
type Backend interface {
	AuthGateway
	CompanyGateway
	UserGateway
	VisitorGateway
	LeadGateway
	BadgeGateway
	AuditGateway
	DashboardGateway
}

// VisitorStats is the body of GET /visitors/stats/overview.
type VisitorStats struct {
	TotalVisitors int `json:"total_visitors"`
	Today         int `json:"today"`
	ThisWeek      int `json:"this_week"`
	ThisMonth     int `json:"this_month"`
}

// LeadStats is the body of GET /leads/stats/overview.
type LeadStats struct {
	TotalLeads int `json:"total_leads"`
	Hot        int `json:"hot"`
	Warm       int `json:"warm"`
	Cold       int `json:"cold"`
	ThisMonth  int `json:"this_month"`
}

// PlatformOverview is the body of GET /admin/dashboard/overview.
type PlatformOverview struct {
	TotalCompanies int `json:"total_companies"`
	TotalUsers     int `json:"total_users"`
	TotalVisitors  int `json:"total_visitors"`
	TotalLeads     int `json:"total_leads"`
}

// CompanyDashboard is the body of GET /admin/dashboard/company.
type CompanyDashboard struct {
	CompanyID      string `json:"company_id"`
	CompanyName    string `json:"company_name"`
	TotalEmployees int    `json:"total_employees"`
	TotalVisitors  int    `json:"total_visitors"`
	TotalLeads     int    `json:"total_leads"`
}

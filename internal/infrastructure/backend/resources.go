package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

func fetchPage[T any](ctx context.Context, c *Client, endpoint, path string, q ports.ListQuery) (*ports.Page[T], error) {
	var env listEnvelope
	if err := c.call(ctx, endpoint, http.MethodGet, path, listQuery(q), nil, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	return decodePage[T](endpoint, env)
}

func send[T any](ctx context.Context, c *Client, endpoint, method, path string, body any) (*T, error) {
	var env dataEnvelope
	if err := c.call(ctx, endpoint, method, path, nil, body, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	return decodeData[T](endpoint, env)
}

func (c *Client) remove(ctx context.Context, endpoint, path string) error {
	if err := c.call(ctx, endpoint, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	return nil
}

func idPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// Login exchanges credentials for a backend token (POST /auth/login).
func (c *Client) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var env loginEnvelope
	if err := c.call(ctx, "auth.login", http.MethodPost, "/auth/login", nil, body, &env); err != nil {
		return nil, fmt.Errorf("auth.login: %w", err)
	}
	if env.Token == "" || env.User == nil {
		return nil, &DecodeError{Endpoint: "auth.login", Reason: `missing "token" or "user"`}
	}
	return &ports.LoginResult{Token: env.Token, User: *env.User}, nil
}

// ── Companies ─────────────────────────────────────────────────────────────────

const companiesPath = "/admin/companies"

func (c *Client) ListCompanies(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Company], error) {
	return fetchPage[domain.Company](ctx, c, "companies.list", companiesPath, q)
}

func (c *Client) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return send[domain.Company](ctx, c, "companies.get", http.MethodGet, idPath(companiesPath, id), nil)
}

func (c *Client) CreateCompany(ctx context.Context, in ports.CompanyInput) (*domain.Company, error) {
	return send[domain.Company](ctx, c, "companies.create", http.MethodPost, companiesPath, in)
}

func (c *Client) UpdateCompany(ctx context.Context, id string, in ports.CompanyInput) (*domain.Company, error) {
	return send[domain.Company](ctx, c, "companies.update", http.MethodPut, idPath(companiesPath, id), in)
}

func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.remove(ctx, "companies.delete", idPath(companiesPath, id))
}

// ── Users and company admins ──────────────────────────────────────────────────

const (
	usersPath         = "/admin/users"
	companyAdminsPath = "/admin/company-admins"
)

func (c *Client) ListUsers(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Employee], error) {
	return fetchPage[domain.Employee](ctx, c, "users.list", usersPath, q)
}

// CreateUser posts to the single pinned user-creation endpoint.
func (c *Client) CreateUser(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	return send[domain.Employee](ctx, c, "users.create", http.MethodPost, usersPath, in)
}

func (c *Client) UpdateUser(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	return send[domain.Employee](ctx, c, "users.update", http.MethodPut, idPath(usersPath, id), in)
}

func (c *Client) DeactivateUser(ctx context.Context, id string) (*domain.Employee, error) {
	return send[domain.Employee](ctx, c, "users.deactivate", http.MethodPut, idPath(usersPath, id)+"/deactivate", nil)
}

func (c *Client) ListCompanyAdmins(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Employee], error) {
	return fetchPage[domain.Employee](ctx, c, "company_admins.list", companyAdminsPath, q)
}

func (c *Client) CreateCompanyAdmin(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	return send[domain.Employee](ctx, c, "company_admins.create", http.MethodPost, companyAdminsPath, in)
}

func (c *Client) UpdateCompanyAdmin(ctx context.Context, id string, in ports.EmployeeInput) (*domain.Employee, error) {
	return send[domain.Employee](ctx, c, "company_admins.update", http.MethodPut, idPath(companyAdminsPath, id), in)
}

// ── Visitors ──────────────────────────────────────────────────────────────────

const visitorsPath = "/visitors"

func (c *Client) ListVisitors(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Visitor], error) {
	return fetchPage[domain.Visitor](ctx, c, "visitors.list", visitorsPath, q)
}

func (c *Client) SearchVisitorsByPhone(ctx context.Context, phone string) ([]domain.Visitor, error) {
	page, err := fetchPage[domain.Visitor](ctx, c, "visitors.search", visitorsPath+"/search/"+url.PathEscape(phone), ports.ListQuery{})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (c *Client) CreateVisitor(ctx context.Context, in ports.VisitorInput) (*domain.Visitor, error) {
	return send[domain.Visitor](ctx, c, "visitors.create", http.MethodPost, visitorsPath, in)
}

func (c *Client) UpdateVisitor(ctx context.Context, id string, in ports.VisitorInput) (*domain.Visitor, error) {
	return send[domain.Visitor](ctx, c, "visitors.update", http.MethodPut, idPath(visitorsPath, id), in)
}

func (c *Client) DeleteVisitor(ctx context.Context, id string) error {
	return c.remove(ctx, "visitors.delete", idPath(visitorsPath, id))
}

func (c *Client) VisitorStats(ctx context.Context) (*ports.VisitorStats, error) {
	return send[ports.VisitorStats](ctx, c, "visitors.stats", http.MethodGet, visitorsPath+"/stats/overview", nil)
}

// ── Leads ─────────────────────────────────────────────────────────────────────

const leadsPath = "/leads"

// leadBody is the wire shape of a lead create/update: the lead fields plus
// the visitor fields the backend denormalizes.
type leadBody struct {
	ports.LeadInput
	VisitorName         string `json:"visitor_name,omitempty"`
	VisitorEmail        string `json:"visitor_email,omitempty"`
	VisitorPhone        string `json:"visitor_phone,omitempty"`
	VisitorOrganization string `json:"visitor_organization,omitempty"`
	VisitorDesignation  string `json:"visitor_designation,omitempty"`
	VisitorCity         string `json:"visitor_city,omitempty"`
	VisitorCountry      string `json:"visitor_country,omitempty"`
}

func newLeadBody(in ports.LeadInput) leadBody {
	return leadBody{
		LeadInput:           in,
		VisitorName:         in.Visitor.FullName,
		VisitorEmail:        in.Visitor.Email,
		VisitorPhone:        in.Visitor.Phone,
		VisitorOrganization: in.Visitor.Organization,
		VisitorDesignation:  in.Visitor.Designation,
		VisitorCity:         in.Visitor.City,
		VisitorCountry:      in.Visitor.Country,
	}
}

func (c *Client) ListLeads(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Lead], error) {
	return fetchPage[domain.Lead](ctx, c, "leads.list", leadsPath, q)
}

func (c *Client) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	return send[domain.Lead](ctx, c, "leads.get", http.MethodGet, idPath(leadsPath, id), nil)
}

func (c *Client) CreateLead(ctx context.Context, in ports.LeadInput) (*domain.Lead, error) {
	return send[domain.Lead](ctx, c, "leads.create", http.MethodPost, leadsPath, newLeadBody(in))
}

func (c *Client) UpdateLead(ctx context.Context, id string, in ports.LeadInput) (*domain.Lead, error) {
	return send[domain.Lead](ctx, c, "leads.update", http.MethodPut, idPath(leadsPath, id), newLeadBody(in))
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.remove(ctx, "leads.delete", idPath(leadsPath, id))
}

func (c *Client) LeadStats(ctx context.Context) (*ports.LeadStats, error) {
	return send[ports.LeadStats](ctx, c, "leads.stats", http.MethodGet, leadsPath+"/stats/overview", nil)
}

// ── Badge mappings ────────────────────────────────────────────────────────────

const badgeMappingsPath = "/admin/badge-mappings"

func (c *Client) ListBadgeMappings(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.BadgeMapping], error) {
	return fetchPage[domain.BadgeMapping](ctx, c, "badge_mappings.list", badgeMappingsPath, q)
}

func (c *Client) CreateBadgeMapping(ctx context.Context, in ports.BadgeMappingInput) (*domain.BadgeMapping, error) {
	return send[domain.BadgeMapping](ctx, c, "badge_mappings.create", http.MethodPost, badgeMappingsPath, in)
}

func (c *Client) DeleteBadgeMapping(ctx context.Context, id string) error {
	return c.remove(ctx, "badge_mappings.delete", idPath(badgeMappingsPath, id))
}

// ── Audit logs and dashboards ─────────────────────────────────────────────────

func (c *Client) ListAuditLogs(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.AuditLog], error) {
	return fetchPage[domain.AuditLog](ctx, c, "audit_logs.list", "/admin/audit-logs", q)
}

func (c *Client) PlatformOverview(ctx context.Context) (*ports.PlatformOverview, error) {
	return send[ports.PlatformOverview](ctx, c, "dashboard.overview", http.MethodGet, "/admin/dashboard/overview", nil)
}

func (c *Client) CompanyDashboard(ctx context.Context) (*ports.CompanyDashboard, error) {
	return send[ports.CompanyDashboard](ctx, c, "dashboard.company", http.MethodGet, "/admin/dashboard/company", nil)
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/analytics"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// analyticsFetchLimit bounds the collections pulled for client-side
// aggregation.
const analyticsFetchLimit = 1000

// DashboardSources is the part of the backend the dashboards read.
type DashboardSources interface {
	ports.DashboardGateway
	ports.CompanyGateway
	ports.UserGateway
	ports.LeadGateway
}

type PlatformDashboard struct {
	Overview      *ports.PlatformOverview  `json:"overview"`
	Totals        analytics.Totals         `json:"totals"`
	CompanyGrowth analytics.GrowthResult   `json:"company_growth"`
	UserGrowth    analytics.GrowthResult   `json:"user_growth"`
	LeadGrowth    analytics.GrowthResult   `json:"lead_growth"`
	LeadSources   []analytics.SourceBucket `json:"lead_sources"`
	TopPerformers []analytics.Performer    `json:"top_performers"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

type CompanyAdminDashboard struct {
	Company       *ports.CompanyDashboard  `json:"company"`
	LeadGrowth    analytics.GrowthResult   `json:"lead_growth"`
	LeadSources   []analytics.SourceBucket `json:"lead_sources"`
	Interests     map[string]int           `json:"interests"`
	TopPerformers []analytics.Performer    `json:"top_performers"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

type EmployeeDashboard struct {
	TotalLeads  int                    `json:"total_leads"`
	LeadGrowth  analytics.GrowthResult `json:"lead_growth"`
	Interests   map[string]int         `json:"interests"`
	RecentLeads []domain.Lead          `json:"recent_leads"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// AnalyticsReport is the body of the Analytics page.
type AnalyticsReport struct {
	LeadGrowth    analytics.GrowthResult   `json:"lead_growth"`
	LeadSources   []analytics.SourceBucket `json:"lead_sources"`
	Interests     map[string]int           `json:"interests"`
	TopPerformers []analytics.Performer    `json:"top_performers,omitempty"`
	GeneratedAt   time.Time                `json:"generated_at"`
}

// DashboardService aggregates fetched collections into the role dashboards.
type DashboardService struct {
	resourceBase
	backend DashboardSources
	now     func() time.Time
}

func NewDashboardService(backend DashboardSources, notify *NotificationService, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		resourceBase: newResourceBase("dashboard", notify, nil, log),
		backend:      backend,
		now:          time.Now,
	}
}

// Platform builds the platform admin dashboard.
func (s *DashboardService) Platform(ctx context.Context) (*PlatformDashboard, error) {
	var (
		overview  *ports.PlatformOverview
		companies []domain.Company
		users     []domain.Employee
		leads     []domain.Lead
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview, err = s.backend.PlatformOverview(gctx)
		return err
	})
	g.Go(func() error {
		page, err := s.backend.ListCompanies(gctx, allItems())
		if err != nil {
			return err
		}
		companies = page.Items
		return nil
	})
	g.Go(func() (err error) {
		users, err = s.users(gctx)
		return err
	})
	g.Go(func() (err error) {
		leads, err = s.leads(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.failed(ctx, "load platform", err)
	}

	now := s.now()
	return &PlatformDashboard{
		Overview:      overview,
		Totals:        analytics.SumCompanies(companies),
		CompanyGrowth: analytics.Growth(companyTimes(companies), now),
		UserGrowth:    analytics.Growth(employeeTimes(users), now),
		LeadGrowth:    analytics.Growth(leadTimes(leads), now),
		LeadSources:   analytics.LeadSources(leads),
		TopPerformers: analytics.TopPerformers(users, leads, analytics.DefaultTopPerformers),
		GeneratedAt:   now.UTC(),
	}, nil
}

// Company builds the company admin dashboard. The backend scopes every
// collection to the admin's company through the bearer token.
func (s *DashboardService) Company(ctx context.Context) (*CompanyAdminDashboard, error) {
	var (
		company *ports.CompanyDashboard
		users   []domain.Employee
		leads   []domain.Lead
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		company, err = s.backend.CompanyDashboard(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.users(gctx)
		return err
	})
	g.Go(func() (err error) {
		leads, err = s.leads(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.failed(ctx, "load company", err)
	}

	now := s.now()
	return &CompanyAdminDashboard{
		Company:       company,
		LeadGrowth:    analytics.Growth(leadTimes(leads), now),
		LeadSources:   analytics.LeadSources(leads),
		Interests:     analytics.InterestBreakdown(leads),
		TopPerformers: analytics.TopPerformers(users, leads, analytics.DefaultTopPerformers),
		GeneratedAt:   now.UTC(),
	}, nil
}

// Employee builds the employee dashboard from the employee's own leads.
func (s *DashboardService) Employee(ctx context.Context) (*EmployeeDashboard, error) {
	leads, err := s.leads(ctx)
	if err != nil {
		return nil, s.failed(ctx, "load employee", err)
	}

	recent := leads
	if len(recent) > recentLeadsShown {
		recent = recent[:recentLeadsShown]
	}

	now := s.now()
	return &EmployeeDashboard{
		TotalLeads:  len(leads),
		LeadGrowth:  analytics.Growth(leadTimes(leads), now),
		Interests:   analytics.InterestBreakdown(leads),
		RecentLeads: recent,
		GeneratedAt: now.UTC(),
	}, nil
}

const recentLeadsShown = 5

// Analytics builds the Analytics page. Performers are only ranked for
// admins, who can list users.
func (s *DashboardService) Analytics(ctx context.Context) (*AnalyticsReport, error) {
	sess, _ := domain.SessionFromContext(ctx)
	withUsers := sess != nil && !sess.User.IsEmployee()

	var (
		users []domain.Employee
		leads []domain.Lead
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		leads, err = s.leads(gctx)
		return err
	})
	if withUsers {
		g.Go(func() (err error) {
			users, err = s.users(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.failed(ctx, "load analytics", err)
	}

	now := s.now()
	report := &AnalyticsReport{
		LeadGrowth:  analytics.Growth(leadTimes(leads), now),
		LeadSources: analytics.LeadSources(leads),
		Interests:   analytics.InterestBreakdown(leads),
		GeneratedAt: now.UTC(),
	}
	if withUsers {
		report.TopPerformers = analytics.TopPerformers(users, leads, analytics.DefaultTopPerformers)
	}
	return report, nil
}

func (s *DashboardService) users(ctx context.Context) ([]domain.Employee, error) {
	page, err := s.backend.ListUsers(ctx, allItems())
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *DashboardService) leads(ctx context.Context) ([]domain.Lead, error) {
	page, err := s.backend.ListLeads(ctx, allItems())
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func allItems() ports.ListQuery {
	return ports.ListQuery{Page: 1, Limit: analyticsFetchLimit}
}

func companyTimes(cs []domain.Company) []time.Time {
	out := make([]time.Time, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.CreatedAt)
	}
	return out
}

func employeeTimes(es []domain.Employee) []time.Time {
	out := make([]time.Time, 0, len(es))
	for _, e := range es {
		out = append(out, e.CreatedAt)
	}
	return out
}

func leadTimes(ls []domain.Lead) []time.Time {
	out := make([]time.Time, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.CreatedAt)
	}
	return out
}

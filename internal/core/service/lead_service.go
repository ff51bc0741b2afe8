package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// LeadService backs the Leads page.
type LeadService struct {
	resourceBase
	leads    ports.LeadGateway
	visitors ports.VisitorGateway
}

func NewLeadService(leads ports.LeadGateway, visitors ports.VisitorGateway, notify *NotificationService, flights *Superseder, log zerolog.Logger) *LeadService {
	return &LeadService{
		resourceBase: newResourceBase("leads", notify, flights, log),
		leads:        leads,
		visitors:     visitors,
	}
}

func (s *LeadService) List(ctx context.Context, q ports.ListQuery) (*ports.Page[domain.Lead], error) {
	q.Page, q.Limit = s.page(ctx, q.Page, q.Limit)

	ctx, done := s.beginList(ctx)
	defer done()

	page, err := s.leads.ListLeads(ctx, q)
	if err != nil {
		return nil, s.listFailed(ctx, err)
	}
	return page, nil
}

func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	l, err := s.leads.GetLead(ctx, id)
	if err != nil {
		return nil, s.failed(ctx, "get", err)
	}
	return l, nil
}

func (s *LeadService) Create(ctx context.Context, in ports.LeadInput) (*domain.Lead, error) {
	if companyID := sessionCompany(ctx); companyID != "" {
		in.CompanyID = companyID
	}
	l, err := s.leads.CreateLead(ctx, in)
	if err != nil {
		return nil, s.failed(ctx, "create", err)
	}
	s.log.Info().Str("lead_id", l.ID).Str("visitor_id", l.VisitorID).Msg("lead created")
	s.succeeded(ctx, "Lead created successfully")
	return l, nil
}

// Update saves a lead. When the denormalized visitor fields differ from the
// stored lead, the visitor record is updated first so both stay in step.
func (s *LeadService) Update(ctx context.Context, id string, in ports.LeadInput) (*domain.Lead, error) {
	original, err := s.leads.GetLead(ctx, id)
	if err != nil {
		return nil, s.failed(ctx, "update", err)
	}

	visitorID := in.VisitorID
	if visitorID == "" {
		visitorID = original.VisitorID
	}
	if visitorID != "" && visitorChanged(original.VisitorFields(), in.Visitor) {
		if _, err := s.visitors.UpdateVisitor(ctx, visitorID, in.Visitor); err != nil {
			return nil, s.failed(ctx, "update visitor of", err)
		}
		s.log.Info().Str("lead_id", id).Str("visitor_id", visitorID).Msg("lead visitor fields synced")
	}

	l, err := s.leads.UpdateLead(ctx, id, in)
	if err != nil {
		return nil, s.failed(ctx, "update", err)
	}
	s.log.Info().Str("lead_id", id).Msg("lead updated")
	s.succeeded(ctx, "Lead updated successfully")
	return l, nil
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	if err := s.leads.DeleteLead(ctx, id); err != nil {
		return s.failed(ctx, "delete", err)
	}
	s.log.Info().Str("lead_id", id).Msg("lead deleted")
	s.succeeded(ctx, "Lead deleted successfully")
	return nil
}

func (s *LeadService) Stats(ctx context.Context) (*ports.LeadStats, error) {
	st, err := s.leads.LeadStats(ctx)
	if err != nil {
		return nil, s.failed(ctx, "stats", err)
	}
	return st, nil
}

// visitorChanged compares the editable visitor fields.
func visitorChanged(orig domain.Visitor, in ports.VisitorInput) bool {
	return orig.FullName != in.FullName ||
		orig.Email != in.Email ||
		orig.Phone != in.Phone ||
		orig.Organization != in.Organization ||
		orig.Designation != in.Designation ||
		orig.City != in.City ||
		orig.Country != in.Country
}

package handler

import (
	"time"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type companyRequest struct {
	Name         string `json:"name"          validate:"required,min=2"`
	CompanyCode  string `json:"company_code"  validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Status       string `json:"status"        validate:"omitempty,oneof=active inactive"`
}

func (r companyRequest) input() ports.CompanyInput {
	return ports.CompanyInput{
		Name:         r.Name,
		CompanyCode:  r.CompanyCode,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Status:       r.Status,
	}
}

type createUserRequest struct {
	FullName  string `json:"full_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"   validate:"required,min=6"`
	CompanyID string `json:"company_id"`
}

type updateUserRequest struct {
	FullName string `json:"full_name" validate:"omitempty,min=2"`
	Email    string `json:"email"     validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Password string `json:"password"  validate:"omitempty,min=6"`
}

func (r createUserRequest) input() ports.EmployeeInput {
	return ports.EmployeeInput{
		FullName:  r.FullName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
		CompanyID: r.CompanyID,
	}
}

func (r updateUserRequest) input() ports.EmployeeInput {
	return ports.EmployeeInput{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}

type visitorRequest struct {
	FullName     string `json:"full_name"    validate:"required"`
	Email        string `json:"email"        validate:"omitempty,email"`
	Phone        string `json:"phone"        validate:"required"`
	Organization string `json:"organization"`
	Designation  string `json:"designation"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

func (r visitorRequest) input() ports.VisitorInput {
	return ports.VisitorInput{
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		Organization: r.Organization,
		Designation:  r.Designation,
		City:         r.City,
		Country:      r.Country,
	}
}

type leadRequest struct {
	VisitorID    string         `json:"visitor_id"`
	Visitor      visitorRequest `json:"visitor"`
	Source       string         `json:"source"`
	Interests    string         `json:"interests"      validate:"omitempty,oneof=Hot Warm Cold"`
	FollowUpDate string         `json:"follow_up_date" validate:"omitempty,datetime=2006-01-02"`
	Notes        string         `json:"notes"          validate:"max=2000"`
}

func (r leadRequest) input() ports.LeadInput {
	in := ports.LeadInput{
		VisitorID: r.VisitorID,
		Visitor:   r.Visitor.input(),
		Source:    r.Source,
		Interests: r.Interests,
		Notes:     r.Notes,
	}
	if d, err := time.Parse("2006-01-02", r.FollowUpDate); err == nil {
		in.FollowUpDate = &d
	}
	return in
}

type badgeMappingRequest struct {
	BadgeID    string `json:"badge_id"    validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

func (r badgeMappingRequest) input() ports.BadgeMappingInput {
	return ports.BadgeMappingInput{BadgeID: r.BadgeID, EmployeeID: r.EmployeeID}
}

type exportRequest struct {
	Resource  string `json:"resource"  validate:"required,oneof=leads visitors"`
	Search    string `json:"search"`
	Interests string `json:"interests" validate:"omitempty,oneof=Hot Warm Cold"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
}

func (r exportRequest) query() ports.ListQuery {
	return ports.ListQuery{Search: r.Search, Interests: r.Interests, DateFrom: r.DateFrom, DateTo: r.DateTo}
}

// --- Response types ---

type employeeView struct {
	domain.Employee
	Status string `json:"status"`
}

func employeeViews(es []domain.Employee) []employeeView {
	out := make([]employeeView, 0, len(es))
	for _, e := range es {
		out = append(out, employeeView{Employee: e, Status: e.StatusLabel()})
	}
	return out
}

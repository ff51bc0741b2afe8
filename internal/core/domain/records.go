package domain

import (
	"strings"
	"time"
)

// NotAvailable is the display placeholder for missing fields.
const NotAvailable = "N/A"

// OrNA returns s, or "N/A" when s is blank.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// CompanyStatus is the lifecycle flag of a tenant company.
type CompanyStatus string

const (
	CompanyActive   CompanyStatus = "active"
	CompanyInactive CompanyStatus = "inactive"
)

// Company is a tenant.
type Company struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CompanyCode  string        `json:"company_code"`
	ContactEmail string        `json:"contact_email,omitempty"`
	ContactPhone string        `json:"contact_phone,omitempty"`
	Status       CompanyStatus `json:"status"`
	TotalUsers   int           `json:"total_users"`
	TotalLeads   int           `json:"total_leads"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Visitor is a person captured at an event.
type Visitor struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Organization string    `json:"organization,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Interest is the sales temperature of a lead.
type Interest string

const (
	InterestHot  Interest = "Hot"
	InterestWarm Interest = "Warm"
	InterestCold Interest = "Cold"
)

// Lead is a visitor interaction flagged as a sales opportunity. Visitor
// fields are denormalized copies of the visitor record.
type Lead struct {
	ID                  string     `json:"id"`
	VisitorID           string     `json:"visitor_id,omitempty"`
	VisitorName         string     `json:"visitor_name,omitempty"`
	VisitorEmail        string     `json:"visitor_email,omitempty"`
	VisitorPhone        string     `json:"visitor_phone,omitempty"`
	VisitorOrganization string     `json:"visitor_organization,omitempty"`
	VisitorDesignation  string     `json:"visitor_designation,omitempty"`
	VisitorCity         string     `json:"visitor_city,omitempty"`
	VisitorCountry      string     `json:"visitor_country,omitempty"`
	CompanyID           string     `json:"company_id,omitempty"`
	CompanyName         string     `json:"company_name,omitempty"`
	Source              string     `json:"source,omitempty"`
	Interests           Interest   `json:"interests,omitempty"`
	FollowUpDate        *time.Time `json:"follow_up_date,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	CreatedBy           string     `json:"created_by,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// VisitorFields returns the denormalized visitor part of the lead.
func (l Lead) VisitorFields() Visitor {
	return Visitor{
		ID:           l.VisitorID,
		FullName:     l.VisitorName,
		Email:        l.VisitorEmail,
		Phone:        l.VisitorPhone,
		Organization: l.VisitorOrganization,
		Designation:  l.VisitorDesignation,
		City:         l.VisitorCity,
		Country:      l.VisitorCountry,
	}
}

// Employee is a user record managed by a company admin.
type Employee struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CompanyID string    `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusLabel is the display status derived from IsActive.
func (e Employee) StatusLabel() string {
	if e.IsActive {
		return "Active"
	}
	return "Inactive"
}

// BadgeMapping associates a physical event badge with an employee.
type BadgeMapping struct {
	ID         string    `json:"id"`
	BadgeID    string    `json:"badge_id"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditLog is a single backend audit trail entry.
type AuditLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	UserName   string    `json:"user_name,omitempty"`
	CompanyID  string    `json:"company_id,omitempty"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	IPAddress  string    `json:"ip_address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

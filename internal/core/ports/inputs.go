package ports

import "time"

// CompanyInput is the create/update body for a company.
type CompanyInput struct {
	Name         string `json:"name,omitempty"`
	CompanyCode  string `json:"company_code,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Status       string `json:"status,omitempty"`
}

// EmployeeInput is the create/update body for employees and company admins.
type EmployeeInput struct {
	FullName  string `json:"full_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
	CompanyID string `json:"company_id,omitempty"`
}

// VisitorInput is the create/update body for a visitor.
type VisitorInput struct {
	FullName     string `json:"full_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
	Designation  string `json:"designation,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
}

// LeadInput is the create/update body for a lead. Visitor carries the
// denormalized visitor fields edited in the same form.
type LeadInput struct {
	VisitorID    string       `json:"visitor_id,omitempty"`
	Visitor      VisitorInput `json:"-"`
	CompanyID    string       `json:"company_id,omitempty"`
	Source       string       `json:"source,omitempty"`
	Interests    string       `json:"interests,omitempty"`
	FollowUpDate *time.Time   `json:"follow_up_date,omitempty"`
	Notes        string       `json:"notes,omitempty"`
}

// BadgeMappingInput is the create body for a badge mapping.
type BadgeMappingInput struct {
	BadgeID    string `json:"badge_id"`
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id,omitempty"`
}

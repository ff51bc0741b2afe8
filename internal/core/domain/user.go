package domain

import "time"

// Role is the authorization level of a console user.
type Role string

const (
	RolePlatformAdmin Role = "platform_admin"
	RoleCompanyAdmin  Role = "company_admin"
	RoleEmployee      Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePlatformAdmin, RoleCompanyAdmin, RoleEmployee:
		return true
	}
	return false
}

// User models the authenticated identity returned by the backend.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
}

func (u *User) IsPlatformAdmin() bool { return u != nil && u.Role == RolePlatformAdmin }
func (u *User) IsCompanyAdmin() bool  { return u != nil && u.Role == RoleCompanyAdmin }
func (u *User) IsEmployee() bool      { return u != nil && u.Role == RoleEmployee }

// Session is the server-side replacement for the token and user record the
// browser kept in local storage.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

package analytics

import (
	"math"
	"strings"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// profileFields is the number of visitor fields considered for completeness.
const profileFields = 7

// ProfileCompleteness returns the share of populated profile fields as a
// whole percentage (0-100).
func ProfileCompleteness(v domain.Visitor) int {
	filled := 0
	for _, f := range []string{v.FullName, v.Email, v.Phone, v.Organization, v.Designation, v.City, v.Country} {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return int(math.Round(float64(filled) / profileFields * 100))
}

// Totals is the headline counter block of the platform overview.
type Totals struct {
	Companies       int `json:"companies"`
	ActiveCompanies int `json:"active_companies"`
	Users           int `json:"users"`
	Leads           int `json:"leads"`
}

// SumCompanies adds up the per-company counters reported by the backend.
func SumCompanies(companies []domain.Company) Totals {
	t := Totals{Companies: len(companies)}
	for _, c := range companies {
		if c.Status == domain.CompanyActive {
			t.ActiveCompanies++
		}
		t.Users += c.TotalUsers
		t.Leads += c.TotalLeads
	}
	return t
}

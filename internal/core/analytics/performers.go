package analytics

import (
	"sort"
	"strings"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

// DefaultTopPerformers is the number of rows on the dashboard card.
const DefaultTopPerformers = 5

// Performer is the display projection of a ranked user.
type Performer struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Leads    int    `json:"leads"`
}

// TopPerformers ranks active users by the number of leads they created.
// The sort is stable, so when no lead carries created_by the result is the
// first n active users in fetch order.
func TopPerformers(users []domain.Employee, leads []domain.Lead, n int) []Performer {
	if n <= 0 {
		n = DefaultTopPerformers
	}

	created := make(map[string]int, len(users))
	for _, l := range leads {
		if l.CreatedBy != "" {
			created[l.CreatedBy]++
		}
	}

	out := make([]Performer, 0, len(users))
	for _, u := range users {
		if !u.IsActive {
			continue
		}
		out = append(out, Performer{
			ID:       u.ID,
			FullName: domain.OrNA(u.FullName),
			Email:    domain.OrNA(u.Email),
			Role:     displayRole(u.Role),
			Leads:    created[u.ID],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Leads > out[j].Leads
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// displayRole turns "company_admin" into "Company Admin".
func displayRole(r domain.Role) string {
	if r == "" {
		return domain.NotAvailable
	}
	words := strings.Split(string(r), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

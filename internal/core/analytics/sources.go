package analytics

import (
	"sort"
	"strings"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/domain"
)

const (
	// UnknownSource is the bucket for leads with no usable attribution.
	UnknownSource = "Unknown Organization"
	maxSources    = 10
)

// SourceBucket is one row of the lead source breakdown.
type SourceBucket struct {
	Source     string  `json:"source"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SourceKey picks the bucket for a lead: its explicit source, else the
// visitor organization, else the visitor city.
func SourceKey(l domain.Lead) string {
	for _, candidate := range []string{l.Source, l.VisitorOrganization, l.VisitorCity} {
		if v := strings.TrimSpace(candidate); v != "" {
			return v
		}
	}
	return UnknownSource
}

// LeadSources buckets leads by SourceKey, sorted by count descending and
// truncated to the top ten. Equal counts keep first-seen order.
func LeadSources(leads []domain.Lead) []SourceBucket {
	if len(leads) == 0 {
		return []SourceBucket{}
	}

	index := make(map[string]int)
	buckets := make([]SourceBucket, 0)
	for _, l := range leads {
		key := SourceKey(l)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, SourceBucket{Source: key})
		}
		buckets[i].Count++
	}

	total := float64(len(leads))
	for i := range buckets {
		buckets[i].Percentage = round1(float64(buckets[i].Count) / total * 100)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	if len(buckets) > maxSources {
		buckets = buckets[:maxSources]
	}
	return buckets
}

// InterestBreakdown counts leads per interest level. Leads without a
// recognised interest are counted under "Unspecified".
func InterestBreakdown(leads []domain.Lead) map[string]int {
	out := map[string]int{
		string(domain.InterestHot):  0,
		string(domain.InterestWarm): 0,
		string(domain.InterestCold): 0,
	}
	for _, l := range leads {
		switch l.Interests {
		case domain.InterestHot, domain.InterestWarm, domain.InterestCold:
			out[string(l.Interests)]++
		default:
			out["Unspecified"]++
		}
	}
	return out
}

// Package analytics derives dashboard summary numbers from collections the
// console has already fetched. Every function is pure; callers pass the
// clock in.
package analytics

import (
	"math"
	"time"
)

// Window is the length of one comparison period.
const Window = 30 * 24 * time.Hour

// Trend tags the direction of a period-over-period change.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// GrowthResult is the growth indicator shown on dashboard cards.
type GrowthResult struct {
	Percentage float64 `json:"percentage"`
	Trend      Trend   `json:"trend"`
	Recent     int     `json:"recent"`
	Previous   int     `json:"previous"`
}

// Growth compares the number of timestamps in the last Window against the
// Window before it.
//
// Recent covers (now-30d, now] and previous covers (now-60d, now-30d].
// Fewer than two timestamps short-circuits to 0%/stable.
func Growth(timestamps []time.Time, now time.Time) GrowthResult {
	if len(timestamps) < 2 {
		return GrowthResult{Trend: TrendStable}
	}

	recentStart := now.Add(-Window)
	previousStart := now.Add(-2 * Window)

	var recent, previous int
	for _, ts := range timestamps {
		switch {
		case ts.After(recentStart) && !ts.After(now):
			recent++
		case ts.After(previousStart) && !ts.After(recentStart):
			previous++
		}
	}

	return growthFromCounts(recent, previous)
}

func growthFromCounts(recent, previous int) GrowthResult {
	res := GrowthResult{Recent: recent, Previous: previous, Trend: TrendStable}
	if previous == 0 {
		if recent > 0 {
			res.Percentage = 100
			res.Trend = TrendUp
		}
		return res
	}

	diff := recent - previous
	res.Percentage = round1(math.Abs(float64(diff)) / float64(previous) * 100)
	switch {
	case diff > 0:
		res.Trend = TrendUp
	case diff < 0:
		res.Trend = TrendDown
	}
	return res
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

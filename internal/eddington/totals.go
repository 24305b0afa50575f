package eddington

import (
	"sort"
	"time"

	"eddington/internal/store"
)

// DayTotal is the summed distance of all activities starting on one
// calendar date, truncated to whole kilometres.
type DayTotal struct {
	Date  time.Time
	Total int
}

// DailyTotals groups activities by UTC calendar date and sums their
// distances, truncating each day's sum to an integer. Activities with a
// missing start or distance are dropped. The result is in chronological
// order.
func DailyTotals(activities []store.Activity) []DayTotal {
	sums := make(map[time.Time]float64)
	for _, a := range activities {
		if a.Start == nil || a.DistanceKM == nil {
			continue
		}
		day := dateOf(*a.Start)
		sums[day] += *a.DistanceKM
	}

	totals := make([]DayTotal, 0, len(sums))
	for day, sum := range sums {
		totals = append(totals, DayTotal{Date: day, Total: int(sum)})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals
}

// Totals extracts just the per-day distance values.
func Totals(days []DayTotal) []int {
	values := make([]int, len(days))
	for i, d := range days {
		values[i] = d.Total
	}
	return values
}

// dateOf truncates a timestamp to its UTC calendar date
func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

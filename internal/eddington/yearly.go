package eddington

import "eddington/internal/store"

// YearlyNumbers computes an independent Eddington number per calendar
// year of the activities' start timestamps. Activities without a start
// or distance are dropped.
func YearlyNumbers(activities []store.Activity) map[int]int {
	byYear := make(map[int][]store.Activity)
	for _, a := range activities {
		if a.Start == nil || a.DistanceKM == nil {
			continue
		}
		year := a.Start.UTC().Year()
		byYear[year] = append(byYear[year], a)
	}

	numbers := make(map[int]int, len(byYear))
	for year, acts := range byYear {
		numbers[year] = Number(Totals(DailyTotals(acts)))
	}
	return numbers
}

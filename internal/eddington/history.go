package eddington

import (
	"sort"
	"time"

	"eddington/internal/store"
)

// HistoryPoint is the Eddington number considering only days up to and
// including Date.
type HistoryPoint struct {
	Date   time.Time
	Number int
}

// History computes the day-by-day running Eddington number. Instead of
// rebuilding the histogram for every day it maintains a bounded
// ascending multiset of the daily totals that can still contribute to
// the number, O(days log days) overall.
//
// The first day's total is always admitted; afterwards a total enters
// only if it is at least the current minimum. Totals smaller than the
// set's size are discarded from the front, leaving the set size equal
// to the running Eddington number.
func History(activities []store.Activity) []HistoryPoint {
	days := DailyTotals(activities)

	var topDays []int
	history := make([]HistoryPoint, 0, len(days))
	for _, day := range days {
		if len(topDays) == 0 {
			topDays = append(topDays, day.Total)
		} else if day.Total >= topDays[0] {
			i := sort.SearchInts(topDays, day.Total)
			topDays = append(topDays, 0)
			copy(topDays[i+1:], topDays[i:])
			topDays[i] = day.Total
		}
		// A zero-distance first day is discarded again immediately,
		// leaving the set empty until a real total arrives.
		for len(topDays) > 0 && topDays[0] < len(topDays) {
			topDays = topDays[1:]
		}
		history = append(history, HistoryPoint{Date: day.Date, Number: len(topDays)})
	}
	return history
}

package search

import (
	"regexp"
	"time"

	"eddington/internal/store"
)

// Apply filters the activity table through the query. It is a pure
// function: the result is a subset of activities in their original
// order, with ids untouched. An inactive query returns every row.
// A malformed name pattern yields an error wrapping ErrInvalidQuery.
func (q Query) Apply(activities []store.Activity) ([]store.Activity, error) {
	nameRE, err := q.compileName()
	if err != nil {
		return nil, err
	}

	result := make([]store.Activity, 0, len(activities))
	for _, a := range activities {
		if q.matches(a, nameRE) {
			result = append(result, a)
		}
	}
	return result, nil
}

// matches evaluates every active predicate against one row and ANDs them.
func (q Query) matches(a store.Activity, nameRE *regexp.Regexp) bool {
	if len(q.Equipment) > 0 && !containsString(q.Equipment, a.Equipment) {
		return false
	}
	if len(q.Kind) > 0 && !containsString(q.Kind, a.Kind) {
		return false
	}
	if nameRE != nil && !nameRE.MatchString(a.Name) {
		return false
	}
	if q.StartBegin != nil {
		// Start must be at or after midnight of the begin date.
		// Rows without a start never satisfy a date predicate.
		if a.Start == nil || a.Start.Before(*q.StartBegin) {
			return false
		}
	}
	if q.StartEnd != nil {
		// Start must fall within the end date, i.e. before the next midnight.
		if a.Start == nil || !a.Start.Before(q.StartEnd.Add(24*time.Hour)) {
			return false
		}
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

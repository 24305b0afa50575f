package service

import (
	"fmt"
	"time"

	"eddington/internal/store"
)

// FormatDistance renders a nullable distance for display
func FormatDistance(km *float64) string {
	if km == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f km", *km)
}

// FormatStart renders a nullable start timestamp for display
func FormatStart(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// DescribeActivity renders a one-line summary of an activity
func DescribeActivity(a store.Activity) string {
	return fmt.Sprintf("%-16s  %-12s  %-10s  %8s  %s",
		FormatStart(a.Start), a.Kind, a.Equipment, FormatDistance(a.DistanceKM), a.Name)
}

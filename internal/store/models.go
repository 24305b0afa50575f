package store

import "time"

// Activity represents one recorded activity in the local table.
// Start and DistanceKM are nullable: imported files may lack either,
// and the statistics drop such rows explicitly.
type Activity struct {
	ID         int64      `db:"id"`
	Equipment  string     `db:"equipment"`
	Kind       string     `db:"kind"`
	Name       string     `db:"name"`
	Start      *time.Time `db:"start"`       // nullable
	DistanceKM *float64   `db:"distance_km"` // nullable, kilometres
}

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// InsertActivity inserts a new activity and returns its assigned id
func (db *DB) InsertActivity(a *Activity) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO activities (equipment, kind, name, start, distance_km)
		VALUES (?, ?, ?, ?, ?)
	`, a.Equipment, a.Kind, a.Name, formatNullableTime(a.Start), a.DistanceKM)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpsertActivity inserts or updates an activity with a known id
func (db *DB) UpsertActivity(a *Activity) error {
	_, err := db.Exec(`
		INSERT INTO activities (id, equipment, kind, name, start, distance_km, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			equipment = excluded.equipment,
			kind = excluded.kind,
			name = excluded.name,
			start = excluded.start,
			distance_km = excluded.distance_km,
			updated_at = CURRENT_TIMESTAMP
	`, a.ID, a.Equipment, a.Kind, a.Name, formatNullableTime(a.Start), a.DistanceKM)
	return err
}

// GetActivity retrieves an activity by ID
func (db *DB) GetActivity(id int64) (*Activity, error) {
	row := db.QueryRow(`
		SELECT id, equipment, kind, name, start, distance_km
		FROM activities
		WHERE id = ?
	`, id)

	var a Activity
	var start sql.NullString
	err := row.Scan(&a.ID, &a.Equipment, &a.Kind, &a.Name, &start, &a.DistanceKM)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	if a.Start, err = parseNullableTime(start); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListActivities returns the full table in id order. Insertion order is
// the canonical row order that filtering must preserve.
func (db *DB) ListActivities() ([]Activity, error) {
	rows, err := db.Query(`
		SELECT id, equipment, kind, name, start, distance_km
		FROM activities
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActivities(rows)
}

// CountActivities returns the total number of activities
func (db *DB) CountActivities() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count)
	return count, err
}

// DistinctEquipment returns the distinct equipment labels, sorted
func (db *DB) DistinctEquipment() ([]string, error) {
	return db.distinctColumn("equipment")
}

// DistinctKinds returns the distinct kind labels, sorted
func (db *DB) DistinctKinds() ([]string, error) {
	return db.distinctColumn("kind")
}

func (db *DB) distinctColumn(column string) ([]string, error) {
	rows, err := db.Query(`
		SELECT DISTINCT ` + column + `
		FROM activities
		WHERE ` + column + ` != ''
		ORDER BY ` + column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// scanActivities scans multiple activities from rows
func scanActivities(rows *sql.Rows) ([]Activity, error) {
	var activities []Activity

	for rows.Next() {
		var a Activity
		var start sql.NullString

		if err := rows.Scan(&a.ID, &a.Equipment, &a.Kind, &a.Name, &start, &a.DistanceKM); err != nil {
			return nil, err
		}

		var parseErr error
		if a.Start, parseErr = parseNullableTime(start); parseErr != nil {
			return nil, parseErr
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}

func formatNullableTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, fmt.Errorf("parsing start %q: %w", s.String, err)
	}
	return &t, nil
}

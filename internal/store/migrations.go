package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Activities (the full local table; id order is the canonical row order)
		`CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			equipment TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			start TEXT,
			distance_km REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_start ON activities(start)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_equipment ON activities(equipment)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_kind ON activities(kind)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}

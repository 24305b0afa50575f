// Package importer loads activity records from CSV files into the
// local store. The expected columns are equipment, kind, name, start
// and distance_km; empty cells become NULLs.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"eddington/internal/store"
)

// ErrBadHeader is returned when the CSV header is missing required columns
var ErrBadHeader = errors.New("missing required CSV columns")

// Accepted start timestamp layouts, tried in order
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var requiredColumns = []string{"equipment", "kind", "name", "start", "distance_km"}

// ImportFile reads the CSV file at path and inserts its rows into the
// store, returning the number of imported activities.
func ImportFile(db *store.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	count, err := Import(db, f)
	if err != nil {
		return count, fmt.Errorf("importing %s: %w", path, err)
	}
	return count, nil
}

// Import reads CSV records from r and inserts them into the store.
func Import(db *store.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return 0, fmt.Errorf("%w: empty file", ErrBadHeader)
	}
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	columns, err := columnIndexes(header)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("reading row %d: %w", count+2, err)
		}

		activity, err := parseRecord(record, columns)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+2, err)
		}

		if _, err := db.InsertActivity(activity); err != nil {
			return count, fmt.Errorf("inserting row %d: %w", count+2, err)
		}
		count++
	}

	return count, nil
}

// columnIndexes maps required column names to their positions
func columnIndexes(header []string) (map[string]int, error) {
	indexes := make(map[string]int, len(header))
	for i, name := range header {
		indexes[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := indexes[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrBadHeader, required)
		}
	}
	return indexes, nil
}

func parseRecord(record []string, columns map[string]int) (*store.Activity, error) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	activity := &store.Activity{
		Equipment: field("equipment"),
		Kind:      field("kind"),
		Name:      field("name"),
	}

	if s := field("start"); s != "" {
		start, err := parseStart(s)
		if err != nil {
			return nil, err
		}
		activity.Start = &start
	}

	if s := field("distance_km"); s != "" {
		distance, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing distance_km %q: %w", s, err)
		}
		if distance < 0 {
			return nil, fmt.Errorf("negative distance_km %q", s)
		}
		activity.DistanceKM = &distance
	}

	return activity, nil
}

func parseStart(s string) (time.Time, error) {
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start timestamp %q", s)
}

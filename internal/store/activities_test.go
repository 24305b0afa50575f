package store

import (
	"errors"
	"testing"
	"time"
)

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func TestActivities(t *testing.T) {
	db := NewTestDB(t)

	start := time.Date(2024, 12, 24, 10, 0, 0, 0, time.UTC)

	t.Run("InsertActivity assigns ids in order", func(t *testing.T) {
		first, err := db.InsertActivity(&Activity{
			Equipment:  "Gravel Bike",
			Kind:       "Ride",
			Name:       "Morning Ride",
			Start:      timePtr(start),
			DistanceKM: floatPtr(42.5),
		})
		if err != nil {
			t.Fatalf("InsertActivity() error = %v", err)
		}

		second, err := db.InsertActivity(&Activity{
			Equipment: "Shoes",
			Kind:      "Run",
			Name:      "Evening Run",
		})
		if err != nil {
			t.Fatalf("InsertActivity() error = %v", err)
		}

		if second <= first {
			t.Errorf("second id = %d, want > %d", second, first)
		}
	})

	t.Run("GetActivity round-trips nullable fields", func(t *testing.T) {
		got, err := db.GetActivity(1)
		if err != nil {
			t.Fatalf("GetActivity(1) error = %v", err)
		}
		if got.Start == nil || !got.Start.Equal(start) {
			t.Errorf("Start = %v, want %v", got.Start, start)
		}
		if got.DistanceKM == nil || *got.DistanceKM != 42.5 {
			t.Errorf("DistanceKM = %v, want 42.5", got.DistanceKM)
		}

		got, err = db.GetActivity(2)
		if err != nil {
			t.Fatalf("GetActivity(2) error = %v", err)
		}
		if got.Start != nil {
			t.Errorf("Start = %v, want nil", got.Start)
		}
		if got.DistanceKM != nil {
			t.Errorf("DistanceKM = %v, want nil", got.DistanceKM)
		}
	})

	t.Run("GetActivity returns ErrActivityNotFound", func(t *testing.T) {
		_, err := db.GetActivity(999)
		if !errors.Is(err, ErrActivityNotFound) {
			t.Errorf("GetActivity(999) error = %v, want ErrActivityNotFound", err)
		}
	})

	t.Run("UpsertActivity updates in place", func(t *testing.T) {
		err := db.UpsertActivity(&Activity{
			ID:        2,
			Equipment: "Trail Shoes",
			Kind:      "Run",
			Name:      "Evening Trail Run",
		})
		if err != nil {
			t.Fatalf("UpsertActivity() error = %v", err)
		}

		got, err := db.GetActivity(2)
		if err != nil {
			t.Fatalf("GetActivity(2) error = %v", err)
		}
		if got.Equipment != "Trail Shoes" {
			t.Errorf("Equipment = %q, want %q", got.Equipment, "Trail Shoes")
		}

		count, err := db.CountActivities()
		if err != nil {
			t.Fatalf("CountActivities() error = %v", err)
		}
		if count != 2 {
			t.Errorf("CountActivities() = %d, want 2", count)
		}
	})

	t.Run("ListActivities preserves id order", func(t *testing.T) {
		activities, err := db.ListActivities()
		if err != nil {
			t.Fatalf("ListActivities() error = %v", err)
		}
		if len(activities) != 2 {
			t.Fatalf("len = %d, want 2", len(activities))
		}
		for i, a := range activities {
			if a.ID != int64(i+1) {
				t.Errorf("activities[%d].ID = %d, want %d", i, a.ID, i+1)
			}
		}
	})

	t.Run("DistinctEquipment and DistinctKinds sorted", func(t *testing.T) {
		equipment, err := db.DistinctEquipment()
		if err != nil {
			t.Fatalf("DistinctEquipment() error = %v", err)
		}
		want := []string{"Gravel Bike", "Trail Shoes"}
		if len(equipment) != len(want) {
			t.Fatalf("DistinctEquipment() = %v, want %v", equipment, want)
		}
		for i := range want {
			if equipment[i] != want[i] {
				t.Errorf("DistinctEquipment()[%d] = %q, want %q", i, equipment[i], want[i])
			}
		}

		kinds, err := db.DistinctKinds()
		if err != nil {
			t.Fatalf("DistinctKinds() error = %v", err)
		}
		if len(kinds) != 2 || kinds[0] != "Ride" || kinds[1] != "Run" {
			t.Errorf("DistinctKinds() = %v, want [Ride Run]", kinds)
		}
	})
}

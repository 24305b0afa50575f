package eddington

import (
	"testing"
	"time"

	"eddington/internal/store"
)

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func activityOn(year int, month time.Month, day int, km float64) store.Activity {
	return store.Activity{
		Start:      timePtr(time.Date(year, month, day, 9, 0, 0, 0, time.UTC)),
		DistanceKM: floatPtr(km),
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name   string
		totals []int
		want   int
	}{
		{"empty input", nil, 0},
		{"single day below one km", []int{0}, 0},
		{"single day with distance", []int{1}, 1},
		{"single long day caps at one", []int{100}, 1},
		{"three days of ten km", []int{10, 10, 10}, 3},
		{"mixed distances", []int{5, 1, 6}, 2},
		{"exact threshold", []int{3, 3, 3}, 3},
		{"just below threshold", []int{2, 2, 2}, 2},
		{"unsorted input", []int{1, 20, 3, 15, 8}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.totals); got != tt.want {
				t.Errorf("Number(%v) = %d, want %d", tt.totals, got, tt.want)
			}
		})
	}
}

func TestNumberMonotonic(t *testing.T) {
	// Adding days at or above the next candidate number never lowers it
	totals := []int{10, 10, 10}
	previous := Number(totals)
	for i := 0; i < 6; i++ {
		totals = append(totals, 10)
		current := Number(totals)
		if current < previous {
			t.Fatalf("Number decreased from %d to %d after adding a 10 km day", previous, current)
		}
		previous = current
	}
	if previous != 9 {
		t.Errorf("Number of nine 10 km days = %d, want 9", previous)
	}
}

func TestHistogram(t *testing.T) {
	t.Run("empty input yields empty histogram", func(t *testing.T) {
		if entries := Histogram(nil); len(entries) != 0 {
			t.Errorf("Histogram(nil) has %d entries, want 0", len(entries))
		}
	})

	t.Run("three days of ten km", func(t *testing.T) {
		entries := Histogram([]int{10, 10, 10})

		if len(entries) != 11 {
			t.Fatalf("len = %d, want 11 (0..10)", len(entries))
		}
		if entries[3].Total != 3 {
			t.Errorf("Total[3] = %d, want 3", entries[3].Total)
		}
		if entries[10].Count != 3 {
			t.Errorf("Count[10] = %d, want 3", entries[10].Count)
		}
		if entries[0].Total != 3 {
			t.Errorf("Total[0] = %d, want 3", entries[0].Total)
		}
		if entries[4].Missing != 1 {
			t.Errorf("Missing[4] = %d, want 1", entries[4].Missing)
		}
		if got := NumberFromHistogram(entries); got != 3 {
			t.Errorf("NumberFromHistogram() = %d, want 3", got)
		}
	})

	t.Run("total is non-increasing", func(t *testing.T) {
		entries := Histogram([]int{1, 20, 3, 15, 8, 8, 2})
		for i := 1; i < len(entries); i++ {
			if entries[i].Total > entries[i-1].Total {
				t.Fatalf("Total[%d] = %d > Total[%d] = %d", i, entries[i].Total, i-1, entries[i-1].Total)
			}
		}
	})

	t.Run("histogram number matches direct number", func(t *testing.T) {
		inputs := [][]int{
			{10, 10, 10},
			{1},
			{0},
			{5, 1, 6},
			{1, 20, 3, 15, 8, 8, 2},
		}
		for _, totals := range inputs {
			direct := Number(totals)
			viaHistogram := NumberFromHistogram(Histogram(totals))
			if direct != viaHistogram {
				t.Errorf("Number(%v) = %d but NumberFromHistogram = %d", totals, direct, viaHistogram)
			}
		}
	})
}

func TestDailyTotals(t *testing.T) {
	activities := []store.Activity{
		activityOn(2024, 3, 10, 5.4),
		activityOn(2024, 3, 10, 5.4),
		activityOn(2024, 3, 11, 2.9),
		{Start: nil, DistanceKM: floatPtr(99)},
		{Start: timePtr(time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)), DistanceKM: nil},
	}

	totals := DailyTotals(activities)
	if len(totals) != 2 {
		t.Fatalf("len = %d, want 2", len(totals))
	}
	// Same-day distances sum before truncation: 5.4 + 5.4 = 10.8 -> 10
	if totals[0].Total != 10 {
		t.Errorf("Total[0] = %d, want 10", totals[0].Total)
	}
	if totals[1].Total != 2 {
		t.Errorf("Total[1] = %d, want 2", totals[1].Total)
	}
	if !totals[0].Date.Before(totals[1].Date) {
		t.Error("totals not in chronological order")
	}
}

func TestYearlyNumbers(t *testing.T) {
	var activities []store.Activity
	// 2023: five days of 10 km -> 5
	for day := 1; day <= 5; day++ {
		activities = append(activities, activityOn(2023, 6, day, 10))
	}
	// 2024: two days of 10 km -> 2
	activities = append(activities,
		activityOn(2024, 6, 1, 10),
		activityOn(2024, 6, 2, 10),
		// dropped rows must not disturb either year
		store.Activity{Start: nil, DistanceKM: floatPtr(50)},
	)

	numbers := YearlyNumbers(activities)
	if len(numbers) != 2 {
		t.Fatalf("len = %d, want 2", len(numbers))
	}
	if numbers[2023] != 5 {
		t.Errorf("numbers[2023] = %d, want 5", numbers[2023])
	}
	if numbers[2024] != 2 {
		t.Errorf("numbers[2024] = %d, want 2", numbers[2024])
	}
}

func TestHistory(t *testing.T) {
	tests := []struct {
		name   string
		totals []int
		want   []int
	}{
		{"running numbers over 5 1 6", []int{5, 1, 6}, []int{1, 1, 2}},
		{"steady tens", []int{10, 10, 10}, []int{1, 2, 3}},
		{"first day always counted", []int{100}, []int{1}},
		{"growing streak", []int{1, 2, 3, 4, 5}, []int{1, 1, 2, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := make([]store.Activity, len(tt.totals))
			for i, km := range tt.totals {
				activities[i] = activityOn(2024, 1, i+1, float64(km))
			}

			history := History(activities)
			if len(history) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(history), len(tt.want))
			}
			for i, want := range tt.want {
				if history[i].Number != want {
					t.Errorf("history[%d].Number = %d, want %d", i, history[i].Number, want)
				}
			}
		})
	}
}

func TestHistoryZeroFirstDay(t *testing.T) {
	activities := []store.Activity{
		activityOn(2024, 1, 1, 0.4), // truncates to 0
		activityOn(2024, 1, 2, 3),
		activityOn(2024, 1, 3, 3),
	}

	history := History(activities)
	want := []int{0, 1, 2}
	for i, w := range want {
		if history[i].Number != w {
			t.Errorf("history[%d].Number = %d, want %d", i, history[i].Number, w)
		}
	}
}

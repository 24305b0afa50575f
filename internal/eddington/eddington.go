// Package eddington computes Eddington-number statistics over daily
// activity distances: the largest E such that at least E distinct days
// each had at least E kilometres of recorded distance.
package eddington

import "sort"

// Number returns the Eddington number for a set of per-day totals.
// Empty input yields 0. A single day below 1 km also yields 0.
func Number(totals []int) int {
	sorted := make([]int, len(totals))
	copy(sorted, totals)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	en := 0
	for i, distance := range sorted {
		if distance < i+1 {
			break
		}
		en = i + 1
	}
	return en
}

// HistogramEntry counts days at and above one integer distance.
type HistogramEntry struct {
	DistanceKM int // distance bucket, whole kilometres
	Count      int // days whose total is exactly this distance
	Total      int // days whose total is at least this distance
	Missing    int // DistanceKM - Total, days short of making this the number
}

// Histogram builds the cumulative days-exceeding-distance histogram with
// one entry per integer distance from 0 to the largest daily total.
// Total is a reverse-cumulative sum of Count and therefore non-increasing.
// Empty input yields an empty histogram.
func Histogram(totals []int) []HistogramEntry {
	if len(totals) == 0 {
		return nil
	}

	max := 0
	for _, d := range totals {
		if d > max {
			max = d
		}
	}

	entries := make([]HistogramEntry, max+1)
	for i := range entries {
		entries[i].DistanceKM = i
	}
	for _, d := range totals {
		entries[d].Count++
	}

	running := 0
	for i := max; i >= 0; i-- {
		running += entries[i].Count
		entries[i].Total = running
		entries[i].Missing = i - running
	}
	return entries
}

// NumberFromHistogram returns the largest distance whose Total still
// reaches it. The entries satisfying Total >= DistanceKM form a
// contiguous prefix because Total is non-increasing, so the answer is
// the last entry of that prefix.
func NumberFromHistogram(entries []HistogramEntry) int {
	en := 0
	for _, e := range entries {
		if e.Total < e.DistanceKM {
			break
		}
		en = e.DistanceKM
	}
	return en
}

package service

import (
	"sort"

	"eddington/internal/eddington"
	"eddington/internal/search"
	"eddington/internal/store"
)

// QueryService provides read-only queries for the TUI. It loads the
// activity table from the store, filters it through a search query and
// hands the result to the statistics functions.
type QueryService struct {
	db *store.DB
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB) *QueryService {
	return &QueryService{db: db}
}

// Activities returns the filtered activity table in its original order
func (q *QueryService) Activities(query search.Query) ([]store.Activity, error) {
	activities, err := q.db.ListActivities()
	if err != nil {
		return nil, err
	}
	return query.Apply(activities)
}

// TotalActivityCount returns the size of the unfiltered table
func (q *QueryService) TotalActivityCount() (int, error) {
	return q.db.CountActivities()
}

// FilterChoices holds the label values available to the filter editor
type FilterChoices struct {
	Equipment []string
	Kinds     []string
}

// GetFilterChoices returns the distinct equipment and kind labels
func (q *QueryService) GetFilterChoices() (*FilterChoices, error) {
	equipment, err := q.db.DistinctEquipment()
	if err != nil {
		return nil, err
	}
	kinds, err := q.db.DistinctKinds()
	if err != nil {
		return nil, err
	}
	return &FilterChoices{Equipment: equipment, Kinds: kinds}, nil
}

// YearNumber is one year's Eddington number
type YearNumber struct {
	Year   int
	Number int
}

// EddingtonData contains everything the Eddington screen renders
type EddingtonData struct {
	Number        int
	Histogram     []eddington.HistogramEntry
	NextTargets   []eddington.HistogramEntry // distances just above the current number
	Yearly        []YearNumber               // sorted by year
	History       []eddington.HistoryPoint
	HistorySeries []float64 // History numbers as a chart series

	ActivityCount int // filtered activities
	DayCount      int // distinct days with a total
	Query         search.Display
}

// GetEddingtonData filters the table and computes the full set of
// Eddington statistics for it.
func (q *QueryService) GetEddingtonData(query search.Query) (*EddingtonData, error) {
	activities, err := q.Activities(query)
	if err != nil {
		return nil, err
	}

	days := eddington.DailyTotals(activities)
	totals := eddington.Totals(days)
	histogram := eddington.Histogram(totals)
	number := eddington.NumberFromHistogram(histogram)
	history := eddington.History(activities)

	data := &EddingtonData{
		Number:        number,
		Histogram:     histogram,
		NextTargets:   nextTargets(histogram, number),
		Yearly:        sortedYearly(eddington.YearlyNumbers(activities)),
		History:       history,
		HistorySeries: historySeries(history),
		ActivityCount: len(activities),
		DayCount:      len(days),
		Query:         query.Display(),
	}
	return data, nil
}

// nextTargets returns the histogram window just above the current
// number: how many days are still missing for each of the next
// NextTargetsWindow distances.
func nextTargets(histogram []eddington.HistogramEntry, number int) []eddington.HistogramEntry {
	var window []eddington.HistogramEntry
	for _, e := range histogram {
		if e.DistanceKM > number && e.DistanceKM <= number+NextTargetsWindow {
			window = append(window, e)
		}
	}
	return window
}

func sortedYearly(numbers map[int]int) []YearNumber {
	yearly := make([]YearNumber, 0, len(numbers))
	for year, number := range numbers {
		yearly = append(yearly, YearNumber{Year: year, Number: number})
	}
	sort.Slice(yearly, func(i, j int) bool { return yearly[i].Year < yearly[j].Year })
	return yearly
}

func historySeries(history []eddington.HistoryPoint) []float64 {
	series := make([]float64, len(history))
	for i, p := range history {
		series[i] = float64(p.Number)
	}
	return series
}

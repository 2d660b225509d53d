package domain

import (
	"cmp"
	"slices"
	"time"
)

// ErrorCount is the number of failures of one category for one reason.
// Category holds either a SyncCategory or an Endpoint name.
type ErrorCount struct {
	Category string
	Reason   string
	Count    int
}

// ErrorReport aggregates sync errors over one calendar day.
type ErrorReport struct {
	Day        time.Time
	Categories map[string][]ErrorCount
}

// NewErrorReport returns an empty report for the UTC day containing day.
func NewErrorReport(day time.Time) *ErrorReport {
	return &ErrorReport{
		Day:        DayStart(day),
		Categories: make(map[string][]ErrorCount),
	}
}

// Add merges counts into the report, summing equal (category, reason) pairs.
func (r *ErrorReport) Add(counts ...ErrorCount) {
	for _, c := range counts {
		list := r.Categories[c.Category]
		i := slices.IndexFunc(list, func(e ErrorCount) bool { return e.Reason == c.Reason })
		if i >= 0 {
			list[i].Count += c.Count
			continue
		}
		r.Categories[c.Category] = append(list, c)
	}
}

// Count returns the number of failures recorded for category and reason.
func (r *ErrorReport) Count(category, reason string) int {
	for _, e := range r.Categories[category] {
		if e.Reason == reason {
			return e.Count
		}
	}
	return 0
}

// Total returns the number of failures across all categories.
func (r *ErrorReport) Total() int {
	n := 0
	for _, list := range r.Categories {
		for _, e := range list {
			n += e.Count
		}
	}
	return n
}

// Sorted returns category names in lexical order, with each category's
// reasons ordered by count descending, then reason.
func (r *ErrorReport) Sorted() []string {
	names := make([]string, 0, len(r.Categories))
	for name, list := range r.Categories {
		slices.SortFunc(list, func(a, b ErrorCount) int {
			if c := cmp.Compare(b.Count, a.Count); c != 0 {
				return c
			}
			return cmp.Compare(a.Reason, b.Reason)
		})
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DayStart truncates t to midnight UTC.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

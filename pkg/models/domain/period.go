package domain

import "time"

type Periodicity string

const (
	PeriodicityWeekly    Periodicity = "weekly"
	PeriodicityMonthly   Periodicity = "monthly"
	PeriodicityQuarterly Periodicity = "quarterly"
	PeriodicityYearly    Periodicity = "yearly"
)

// TotalKey is the reserved period key denoting the sum across all periods.
// The period generator never emits it.
const TotalKey = "total"

// Period is one bucket of the forecast horizon. From and To are inclusive.
type Period struct {
	Key   string
	From  time.Time
	To    time.Time
	Label string
}

// Contains reports whether t falls inside the period's inclusive window.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

// Days returns the inclusive day count of the period.
func (p Period) Days() int {
	return int(p.To.Sub(p.From).Hours()/24) + 1
}

// PeriodKeys returns the keys of the given periods in order, without TotalKey.
func PeriodKeys(periods []Period) []string {
	keys := make([]string, 0, len(periods))
	for _, p := range periods {
		keys = append(keys, p.Key)
	}
	return keys
}

package domain

import (
	"fmt"
	"time"
)

// AmountMap maps period keys (plus TotalKey) to amounts in the
// presentation currency.
type AmountMap map[string]float64

// NewAmountMap returns a map with a zero entry for every period key and
// for TotalKey. A period with no qualifying records stays at zero rather
// than being absent.
func NewAmountMap(periods []Period) AmountMap {
	m := make(AmountMap, len(periods)+1)
	for _, p := range periods {
		m[p.Key] = 0
	}
	m[TotalKey] = 0
	return m
}

// Add accumulates v into the period bucket and the running total.
func (m AmountMap) Add(key string, v float64) {
	m[key] += v
	m[TotalKey] += v
}

// SumAmounts returns the per-key sum of the given maps over the periods
// and TotalKey.
func SumAmounts(periods []Period, maps ...AmountMap) AmountMap {
	out := NewAmountMap(periods)
	for _, key := range append(PeriodKeys(periods), TotalKey) {
		for _, m := range maps {
			out[key] += m[key]
		}
	}
	return out
}

// SubtractAmounts returns a minus b per key.
func SubtractAmounts(periods []Period, a, b AmountMap) AmountMap {
	out := NewAmountMap(periods)
	for _, key := range append(PeriodKeys(periods), TotalKey) {
		out[key] = a[key] - b[key]
	}
	return out
}

// CategoryResult is the output of one category aggregation: a fully
// populated amount map plus the number of source records excluded for
// missing required fields.
type CategoryResult struct {
	Amounts AmountMap
	Skipped int
}

// Row is one line of the rendered forecast. Separator rows carry a nil
// Amounts map.
type Row struct {
	Label          string
	Indent         int
	IsGroup        bool
	Bold           bool
	WarnIfNegative bool
	Currency       string
	Amounts        AmountMap
}

type ChartDataset struct {
	Name   string
	Values []string
}

type Chart struct {
	Type     string
	Labels   []string
	Datasets []ChartDataset
}

type Indicator string

const (
	IndicatorGreen Indicator = "Green"
	IndicatorRed   Indicator = "Red"
)

type SummaryTile struct {
	Label     string
	Value     float64
	Currency  string
	Indicator Indicator
}

// Report is the complete forecast output for one run.
type Report struct {
	Periods []Period
	Rows    []Row
	Message string
	Chart   Chart
	Summary []SummaryTile
}

// Filters describe one forecast run.
type Filters struct {
	FromDate             time.Time
	ToDate               time.Time
	Periodicity          Periodicity
	Company              string // empty means all companies
	PresentationCurrency string
}

func (f Filters) Validate() error {
	if f.FromDate.IsZero() || f.ToDate.IsZero() {
		return fmt.Errorf("both from and to dates are required")
	}
	if f.FromDate.After(f.ToDate) {
		return fmt.Errorf("from date (%s) must not be after to date (%s)",
			f.FromDate.Format("2006-01-02"),
			f.ToDate.Format("2006-01-02"))
	}
	switch f.Periodicity {
	case PeriodicityWeekly, PeriodicityMonthly, PeriodicityQuarterly, PeriodicityYearly:
	default:
		return fmt.Errorf("unsupported periodicity: %q", f.Periodicity)
	}
	if f.PresentationCurrency == "" {
		return fmt.Errorf("presentation currency is required")
	}
	return nil
}

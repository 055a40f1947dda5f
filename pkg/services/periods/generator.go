package periods

import (
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
)

// Generate splits [from, to] into ordered, gap-free, non-overlapping
// periods. Monthly, quarterly and yearly buckets align to calendar
// boundaries; weekly buckets are seven-day spans starting at from. The
// first and last buckets are truncated to the requested range.
func Generate(from, to time.Time, periodicity domain.Periodicity) ([]domain.Period, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("both from and to dates are required")
	}
	if from.After(to) {
		return nil, fmt.Errorf("from date (%s) must not be after to date (%s)",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	from = truncate(from)
	to = truncate(to)

	var periods []domain.Period
	start := from
	for !start.After(to) {
		end, err := bucketEnd(start, periodicity)
		if err != nil {
			return nil, err
		}
		if end.After(to) {
			end = to
		}

		periods = append(periods, domain.Period{
			Key:   periodKey(start, periodicity),
			From:  start,
			To:    end,
			Label: periodLabel(start, periodicity),
		})
		start = end.AddDate(0, 0, 1)
	}
	return periods, nil
}

// bucketEnd returns the last day of the natural calendar bucket
// containing start.
func bucketEnd(start time.Time, periodicity domain.Periodicity) (time.Time, error) {
	switch periodicity {
	case domain.PeriodicityWeekly:
		return start.AddDate(0, 0, 6), nil
	case domain.PeriodicityMonthly:
		firstOfMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		return firstOfMonth.AddDate(0, 1, -1), nil
	case domain.PeriodicityQuarterly:
		quarterStartMonth := time.Month((int(start.Month()-1)/3)*3 + 1)
		firstOfQuarter := time.Date(start.Year(), quarterStartMonth, 1, 0, 0, 0, 0, time.UTC)
		return firstOfQuarter.AddDate(0, 3, -1), nil
	case domain.PeriodicityYearly:
		return time.Date(start.Year(), time.December, 31, 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported periodicity: %q", periodicity)
	}
}

func periodKey(start time.Time, periodicity domain.Periodicity) string {
	switch periodicity {
	case domain.PeriodicityWeekly:
		return start.Format("2006_01_02")
	case domain.PeriodicityMonthly:
		return strings.ToLower(start.Format("Jan_2006"))
	case domain.PeriodicityQuarterly:
		return fmt.Sprintf("q%d_%d", quarter(start), start.Year())
	default:
		return start.Format("2006")
	}
}

func periodLabel(start time.Time, periodicity domain.Periodicity) string {
	switch periodicity {
	case domain.PeriodicityWeekly:
		return start.Format("Jan 02, 2006")
	case domain.PeriodicityMonthly:
		return start.Format("Jan 2006")
	case domain.PeriodicityQuarterly:
		return fmt.Sprintf("Q%d %d", quarter(start), start.Year())
	default:
		return start.Format("2006")
	}
}

func quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

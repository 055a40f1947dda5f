package forecast

import (
	"fmt"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
)

// maxOccurrences caps expansion so a daily schedule over a multi-year
// horizon cannot degenerate.
const maxOccurrences = 1000

// expandOccurrences lists a schedule's occurrence dates from its next
// scheduled date up to horizonEnd, bounded by the schedule's own end date
// when one is set.
func expandOccurrences(s domain.RepeatSchedule, horizonEnd time.Time) ([]time.Time, error) {
	if s.NextDate.IsZero() {
		return nil, fmt.Errorf("schedule has no next scheduled date")
	}
	if _, err := nextOccurrence(s.NextDate, s.Frequency); err != nil {
		return nil, err
	}

	end := horizonEnd
	if !s.EndDate.IsZero() && s.EndDate.Before(end) {
		end = s.EndDate
	}

	var occurrences []time.Time
	for d := s.NextDate; !d.After(end) && len(occurrences) < maxOccurrences; {
		occurrences = append(occurrences, d)
		d, _ = nextOccurrence(d, s.Frequency)
	}
	return occurrences, nil
}

func nextOccurrence(d time.Time, frequency domain.Frequency) (time.Time, error) {
	switch frequency {
	case domain.FrequencyDaily:
		return d.AddDate(0, 0, 1), nil
	case domain.FrequencyWeekly:
		return d.AddDate(0, 0, 7), nil
	case domain.FrequencyMonthly:
		return d.AddDate(0, 1, 0), nil
	case domain.FrequencyQuarterly:
		return d.AddDate(0, 3, 0), nil
	case domain.FrequencyHalfYearly:
		return d.AddDate(0, 6, 0), nil
	case domain.FrequencyYearly:
		return d.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported frequency: %q", frequency)
	}
}

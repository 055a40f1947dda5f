package forecast

import (
	"context"
	"fmt"

	"github.com/de-tools/liquidity-atlas/pkg/adapters"
	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// daysPerMonth is the average Gregorian month length used to prorate a
// monthly compensation over a partial period.
const daysPerMonth = 30.438302988666667

// Salaries distributes each employee's monthly compensation pro rata over
// the fraction of every period their tenure overlaps. Employees joining
// after a period ends, or relieved before it begins, contribute zero to
// that period; an employee without a relieving date stays active through
// the horizon.
func (e *Engine) Salaries(
	ctx context.Context,
	periods []domain.Period,
	f domain.Filters,
) (domain.CategoryResult, error) {
	logger := zerolog.Ctx(ctx)

	records, err := e.documents.Employees(ctx, f.Company)
	if err != nil {
		return domain.CategoryResult{}, fmt.Errorf("employee query: %w", err)
	}

	var employees []domain.Employee
	skipped := 0
	for _, record := range records {
		employee := adapters.MapStoreEmployeeToDomain(record)
		if employee.DateOfJoining.IsZero() {
			skipped++
			continue
		}
		employees = append(employees, employee)
	}

	if skipped > 0 {
		logger.Warn().
			Int("skipped", skipped).
			Msg("employees without a joining date excluded from forecast")
	}

	asOf := e.now()
	amounts := domain.NewAmountMap(periods)

	for _, p := range periods {
		for _, employee := range employees {
			if employee.DateOfJoining.After(p.To) {
				continue
			}
			if !employee.RelievingDate.IsZero() && employee.RelievingDate.Before(p.From) {
				continue
			}

			start := employee.DateOfJoining
			if p.From.After(start) {
				start = p.From
			}
			end := p.To
			if !employee.RelievingDate.IsZero() && employee.RelievingDate.Before(end) {
				end = employee.RelievingDate
			}

			overlapDays := end.Sub(start).Hours()/24 + 1
			contribution := overlapDays / daysPerMonth * employee.CTC

			v, err := e.normalizer.Normalize(ctx, contribution, employee.SalaryCurrency, f.PresentationCurrency, asOf)
			if err != nil {
				return domain.CategoryResult{}, fmt.Errorf("salaries: %w", err)
			}
			amounts.Add(p.Key, v)
		}
	}

	return domain.CategoryResult{Amounts: amounts, Skipped: skipped}, nil
}

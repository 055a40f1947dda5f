package forecast

import (
	"context"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/adapters"
	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/de-tools/liquidity-atlas/pkg/services/currency"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/documents"
)

// Engine aggregates financial documents into per-period cash-flow maps.
// All amounts are normalized into the presentation currency at the
// current date; forecast values are always expressed in today's exchange
// rates, not historical ones.
type Engine struct {
	documents  documents.Store
	normalizer currency.Normalizer
	now        func() time.Time
}

type Option func(*Engine)

// WithClock overrides the reference date used for currency conversion.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(docs documents.Store, normalizer currency.Normalizer, opts ...Option) *Engine {
	e := &Engine{
		documents:  docs,
		normalizer: normalizer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Companies(ctx context.Context) ([]domain.Company, error) {
	records, err := e.documents.Companies(ctx)
	if err != nil {
		return nil, err
	}

	companies := make([]domain.Company, 0, len(records))
	for _, c := range records {
		companies = append(companies, adapters.MapStoreCompanyToDomain(c))
	}
	return companies, nil
}

// entry is one dated contribution to a category, in its source currency,
// before bucket assignment and normalization. Category code reduces its
// heterogeneous records to entries; bucket does the rest uniformly.
type entry struct {
	date     time.Time
	amount   float64
	currency string
}

// bucket assigns each entry to the period containing its date, normalizes
// it into the target currency, and accumulates per-period sums plus the
// running total. Entries dated outside every period contribute nothing.
func (e *Engine) bucket(
	ctx context.Context,
	periods []domain.Period,
	entries []entry,
	targetCurrency string,
) (domain.AmountMap, error) {
	asOf := e.now()
	amounts := domain.NewAmountMap(periods)

	for _, en := range entries {
		for _, p := range periods {
			if !p.Contains(en.date) {
				continue
			}
			v, err := e.normalizer.Normalize(ctx, en.amount, en.currency, targetCurrency, asOf)
			if err != nil {
				return nil, err
			}
			amounts.Add(p.Key, v)
			break
		}
	}
	return amounts, nil
}

// horizon returns the query window covering all periods.
func horizon(periods []domain.Period, company string) documents.QueryFilter {
	return documents.QueryFilter{
		From:    periods[0].From,
		To:      periods[len(periods)-1].To,
		Company: company,
	}
}

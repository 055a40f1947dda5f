package currency

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/rates"
	"github.com/shopspring/decimal"
)

// Normalizer converts amounts into a report's presentation currency.
type Normalizer interface {
	Normalize(ctx context.Context, amount float64, from, to string, asOf time.Time) (float64, error)
}

type normalizer struct {
	rates rates.Store
}

func NewNormalizer(rateStore rates.Store) Normalizer {
	return &normalizer{rates: rateStore}
}

// Normalize converts amount from one currency to another at the rate in
// effect on asOf. Identical currencies return the amount unchanged
// without a rate lookup; a pair without a stored rate is an error, never
// a silent rate of 1.0.
func (n *normalizer) Normalize(ctx context.Context, amount float64, from, to string, asOf time.Time) (float64, error) {
	if from == to {
		return amount, nil
	}

	rate, err := n.rates.Rate(ctx, from, to, asOf)
	if err != nil {
		return 0, fmt.Errorf("normalize %s -> %s: %w", from, to, err)
	}

	converted := decimal.NewFromFloat(amount).Mul(rate)
	return converted.InexactFloat64(), nil
}

package rates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb"
	"github.com/shopspring/decimal"
)

// ErrRateNotFound signals that no exchange rate exists for a currency
// pair. Callers must treat it as fatal for the run; substituting a
// default rate would misstate the forecast.
var ErrRateNotFound = errors.New("exchange rate not found")

type Rate struct {
	FromCurrency string
	ToCurrency   string
	Date         time.Time
	Rate         decimal.Decimal
}

type Store interface {
	// Rate returns the most recent rate for the pair dated on or before
	// asOf. Returns ErrRateNotFound when no such rate exists.
	Rate(ctx context.Context, from, to string, asOf time.Time) (decimal.Decimal, error)
	Add(ctx context.Context, rates []Rate) error
}

type rateStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &rateStore{db: db}, nil
}

func (r *rateStore) Rate(ctx context.Context, from, to string, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT rate
		FROM currency_rates
		WHERE from_currency = ? AND to_currency = ? AND rate_date <= ?
		ORDER BY rate_date DESC
		LIMIT 1`

	var raw string
	err := r.db.QueryRowContext(ctx, query, from, to, asOf).Scan(&raw)
	if err == sql.ErrNoRows {
		return decimal.Zero, fmt.Errorf("%w: %s -> %s as of %s",
			ErrRateNotFound, from, to, asOf.Format("2006-01-02"))
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate lookup failed: %w", err)
	}

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed rate %q for %s -> %s: %w", raw, from, to, err)
	}
	return rate, nil
}

func (r *rateStore) Add(ctx context.Context, rates []Rate) error {
	if len(rates) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO currency_rates (from_currency, to_currency, rate_date, rate)
		VALUES (?, ?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = r.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, rate := range rates {
		_, err = stmt.ExecContext(ctx, rate.FromCurrency, rate.ToCurrency, rate.Date, rate.Rate.String())
		if err != nil {
			return fmt.Errorf("insert rate: %w", err)
		}
	}
	return nil
}

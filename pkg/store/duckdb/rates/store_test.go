package rates

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rateQuery = regexp.QuoteMeta(`
		SELECT rate
		FROM currency_rates
		WHERE from_currency = ? AND to_currency = ? AND rate_date <= ?
		ORDER BY rate_date DESC
		LIMIT 1`)

func TestRateStore_Rate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	asOf := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns most recent rate on or before asOf", func(t *testing.T) {
		mock.ExpectQuery(rateQuery).
			WithArgs("USD", "EUR", asOf).
			WillReturnRows(sqlmock.NewRows([]string{"rate"}).AddRow("0.92"))

		rate, err := s.Rate(context.Background(), "USD", "EUR", asOf)
		require.NoError(t, err)
		assert.Equal(t, "0.92", rate.String())
	})

	t.Run("missing pair yields ErrRateNotFound", func(t *testing.T) {
		mock.ExpectQuery(rateQuery).
			WithArgs("USD", "CHF", asOf).
			WillReturnRows(sqlmock.NewRows([]string{"rate"}))

		_, err := s.Rate(context.Background(), "USD", "CHF", asOf)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRateNotFound))
	})

	t.Run("malformed stored rate is an error", func(t *testing.T) {
		mock.ExpectQuery(rateQuery).
			WithArgs("USD", "GBP", asOf).
			WillReturnRows(sqlmock.NewRows([]string{"rate"}).AddRow("not-a-number"))

		_, err := s.Rate(context.Background(), "USD", "GBP", asOf)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrRateNotFound))
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRateStore_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Run("empty slice is a no-op", func(t *testing.T) {
		require.NoError(t, s.Add(context.Background(), nil))
	})

	t.Run("inserts each rate", func(t *testing.T) {
		insert := regexp.QuoteMeta(`
		INSERT INTO currency_rates (from_currency, to_currency, rate_date, rate)
		VALUES (?, ?, ?, ?)`)
		date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

		mock.ExpectPrepare(insert).
			ExpectExec().
			WithArgs("USD", "EUR", date, "0.92").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.Add(context.Background(), []Rate{{
			FromCurrency: "USD",
			ToCurrency:   "EUR",
			Date:         date,
			Rate:         mustDecimal(t, "0.92"),
		}})
		require.NoError(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

package forecast

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSalaries_FullPeriodProration(t *testing.T) {
	docs := &mockDocumentStore{}
	periods := monthlyPeriods(2026, time.February, 1) // Feb 1 - Feb 28

	docs.On("Employees", mock.Anything, "").Return([]store.Employee{
		{Name: "EMP-1", Company: "Alpha", CTC: 3000, SalaryCurrency: "EUR",
			DateOfJoining: day(2026, 2, 1)},
	}, nil)

	engine := newTestEngine(docs, nil)
	result, err := engine.Salaries(context.Background(), periods, testFilters(""))
	require.NoError(t, err)

	// Joining exactly on the period start yields the full 28-day overlap.
	expected := 28.0 / daysPerMonth * 3000
	assert.InDelta(t, expected, result.Amounts["p1"], 1e-9)
	assert.InDelta(t, expected, result.Amounts["total"], 1e-9)
}

func TestSalaries_TenureBoundaries(t *testing.T) {
	docs := &mockDocumentStore{}
	periods := monthlyPeriods(2026, time.February, 2) // Feb, Mar

	docs.On("Employees", mock.Anything, "").Return([]store.Employee{
		// Relieved the day before March starts: contributes to Feb only.
		{Name: "EMP-1", Company: "Alpha", CTC: 2000, SalaryCurrency: "EUR",
			DateOfJoining: day(2024, 1, 1), RelievingDate: dayPtr(2026, 2, 28)},
		// Joins after the horizon ends: contributes nothing.
		{Name: "EMP-2", Company: "Alpha", CTC: 5000, SalaryCurrency: "EUR",
			DateOfJoining: day(2026, 6, 1)},
		// Joins mid-March: prorated for the remaining days.
		{Name: "EMP-3", Company: "Alpha", CTC: 3100, SalaryCurrency: "EUR",
			DateOfJoining: day(2026, 3, 22)},
	}, nil)

	engine := newTestEngine(docs, nil)
	result, err := engine.Salaries(context.Background(), periods, testFilters(""))
	require.NoError(t, err)

	febExpected := 28.0 / daysPerMonth * 2000
	assert.InDelta(t, febExpected, result.Amounts["p1"], 1e-9)

	// March holds only EMP-3's ten days (Mar 22 - Mar 31).
	marExpected := 10.0 / daysPerMonth * 3100
	assert.InDelta(t, marExpected, result.Amounts["p2"], 1e-9)
}

func TestSalaries_SalaryCurrencyIsConverted(t *testing.T) {
	docs := &mockDocumentStore{}
	periods := monthlyPeriods(2026, time.February, 1)

	docs.On("Employees", mock.Anything, "").Return([]store.Employee{
		{Name: "EMP-1", Company: "Beta", CTC: 1000, SalaryCurrency: "USD",
			DateOfJoining: day(2026, 2, 1)},
	}, nil)

	engine := newTestEngine(docs, map[string]float64{"USD->EUR": 0.9})
	result, err := engine.Salaries(context.Background(), periods, testFilters(""))
	require.NoError(t, err)

	expected := 28.0 / daysPerMonth * 1000 * 0.9
	assert.InDelta(t, expected, result.Amounts["p1"], 1e-9)
}

func TestSalaries_MissingJoiningDateIsCountedAsSkipped(t *testing.T) {
	docs := &mockDocumentStore{}
	periods := monthlyPeriods(2026, time.February, 1)

	docs.On("Employees", mock.Anything, "").Return([]store.Employee{
		{Name: "EMP-1", Company: "Alpha", CTC: 2500, SalaryCurrency: "EUR"},
	}, nil)

	engine := newTestEngine(docs, nil)
	result, err := engine.Salaries(context.Background(), periods, testFilters(""))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Zero(t, result.Amounts["p1"])
}

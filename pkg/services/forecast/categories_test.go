package forecast

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/de-tools/liquidity-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrdersSubmittedAndBilled(t *testing.T) {
	docs := &mockDocumentStore{}
	periods := monthlyPeriods(2026, time.February, 2)

	docs.On("Orders", mock.Anything, "sales_order", mock.Anything).Return([]store.Order{
		{Name: "SO-1", Status: "To Bill", TransactionDate: dayPtr(2026, 2, 10),
			GrandTotal: 1000, PerBilled: 40, Currency: "EUR"},
		{Name: "SO-2", Status: "To Bill", TransactionDate: dayPtr(2026, 3, 3),
			GrandTotal: 600, PerBilled: 100, Currency: "EUR"},
		// No transaction date: excluded and counted.
		{Name: "SO-3", Status: "To Bill", GrandTotal: 777, Currency: "EUR"},
	}, nil)

	engine := newTestEngine(docs, nil)
	submitted, billed, err := engine.OrdersSubmittedAndBilled(
		context.Background(), periods, domain.DocKindSalesOrder, testFilters(""))
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, submitted.Amounts["p1"], 1e-9)
	assert.InDelta(t, 600.0, submitted.Amounts["p2"], 1e-9)
	assert.InDelta(t, 1600.0, submitted.Amounts["total"], 1e-9)

	// Billed adjustments are negative and land in the order's own period.
	assert.InDelta(t, -400.0, billed.Amounts["p1"], 1e-9)
	assert.InDelta(t, -600.0, billed.Amounts["p2"], 1e-9)
	assert.InDelta(t, -1000.0, billed.Amounts["total"], 1e-9)

	assert.Equal(t, 1, submitted.Skipped)
}

func TestOrders_DateOutsideEveryPeriodIsDropped(t *testing.T) {
	docs := &mockDocumentStore{}
	periods := monthlyPeriods(2026, time.February, 1)

	docs.On("Orders", mock.Anything, "sales_order", mock.Anything).Return([]store.Order{
		{Name: "SO-1", Status: "To Bill", TransactionDate: dayPtr(2026, 6, 1),
			GrandTotal: 1000, Currency: "EUR"},
	}, nil)

	engine := newTestEngine(docs, nil)
	submitted, _, err := engine.OrdersSubmittedAndBilled(
		context.Background(), periods, domain.DocKindSalesOrder, testFilters(""))
	require.NoError(t, err)

	assert.Zero(t, submitted.Amounts["p1"])
	assert.Zero(t, submitted.Amounts["total"])
	assert.Zero(t, submitted.Skipped)
}

func TestInvoices_BucketedByDueDate(t *testing.T) {
	docs := &mockDocumentStore{}
	periods := monthlyPeriods(2026, time.February, 2)

	docs.On("Invoices", mock.Anything, "purchase_invoice", mock.Anything).Return([]store.Invoice{
		{Name: "PINV-1", Status: "Unpaid", DueDate: dayPtr(2026, 3, 15), GrandTotal: 320, Currency: "EUR"},
		{Name: "PINV-2", Status: "Unpaid", GrandTotal: 90, Currency: "EUR"},
	}, nil)

	engine := newTestEngine(docs, nil)
	result, err := engine.Invoices(context.Background(), periods, domain.DocKindPurchaseInvoice, testFilters(""))
	require.NoError(t, err)

	assert.Zero(t, result.Amounts["p1"])
	assert.InDelta(t, 320.0, result.Amounts["p2"], 1e-9)
	assert.Equal(t, 1, result.Skipped)
}

func TestExpenseClaims_CurrencyFromOwningCompany(t *testing.T) {
	docs := &mockDocumentStore{}
	periods := monthlyPeriods(2026, time.February, 1)

	docs.On("ExpenseClaims", mock.Anything, mock.Anything).Return([]store.ExpenseClaim{
		{Name: "EC-1", Company: "Beta", Status: "Approved", PostingDate: dayPtr(2026, 2, 5), TotalClaimed: 200},
		{Name: "EC-2", Company: "Beta", Status: "Approved", PostingDate: dayPtr(2026, 2, 6), TotalClaimed: 100},
		{Name: "EC-3", Company: "Ghost", Status: "Approved", PostingDate: dayPtr(2026, 2, 7), TotalClaimed: 50},
	}, nil)
	docs.On("DefaultCurrency", mock.Anything, "Beta").Return("USD", nil).Once()
	docs.On("DefaultCurrency", mock.Anything, "Ghost").Return("", notFoundErr{})

	engine := newTestEngine(docs, map[string]float64{"USD->EUR": 0.5})
	result, err := engine.ExpenseClaims(context.Background(), periods, testFilters(""))
	require.NoError(t, err)

	// Both Beta claims convert through the company default currency; the
	// lookup is cached, so the store is asked once per company.
	assert.InDelta(t, 150.0, result.Amounts["p1"], 1e-9)
	assert.Equal(t, 1, result.Skipped)
	docs.AssertExpectations(t)
}

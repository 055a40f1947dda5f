package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/de-tools/liquidity-atlas/pkg/models/store"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/documents"
	"github.com/stretchr/testify/mock"
)

type mockDocumentStore struct {
	mock.Mock
}

func (m *mockDocumentStore) Orders(ctx context.Context, kind string, f documents.QueryFilter) ([]store.Order, error) {
	args := m.Called(ctx, kind, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Order), args.Error(1)
}

func (m *mockDocumentStore) Order(ctx context.Context, kind, name string) (*store.Order, error) {
	args := m.Called(ctx, kind, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Order), args.Error(1)
}

func (m *mockDocumentStore) Invoices(ctx context.Context, kind string, f documents.QueryFilter) ([]store.Invoice, error) {
	args := m.Called(ctx, kind, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Invoice), args.Error(1)
}

func (m *mockDocumentStore) ActiveSchedules(ctx context.Context, referenceKind string) ([]store.RepeatSchedule, error) {
	args := m.Called(ctx, referenceKind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.RepeatSchedule), args.Error(1)
}

func (m *mockDocumentStore) Employees(ctx context.Context, company string) ([]store.Employee, error) {
	args := m.Called(ctx, company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Employee), args.Error(1)
}

func (m *mockDocumentStore) ExpenseClaims(ctx context.Context, f documents.QueryFilter) ([]store.ExpenseClaim, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.ExpenseClaim), args.Error(1)
}

func (m *mockDocumentStore) Companies(ctx context.Context) ([]store.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Company), args.Error(1)
}

func (m *mockDocumentStore) DefaultCurrency(ctx context.Context, company string) (string, error) {
	args := m.Called(ctx, company)
	return args.String(0), args.Error(1)
}

func (m *mockDocumentStore) AddOrders(ctx context.Context, orders []store.Order) error {
	return m.Called(ctx, orders).Error(0)
}

func (m *mockDocumentStore) AddInvoices(ctx context.Context, invoices []store.Invoice) error {
	return m.Called(ctx, invoices).Error(0)
}

func (m *mockDocumentStore) AddSchedules(ctx context.Context, schedules []store.RepeatSchedule) error {
	return m.Called(ctx, schedules).Error(0)
}

func (m *mockDocumentStore) AddEmployees(ctx context.Context, employees []store.Employee) error {
	return m.Called(ctx, employees).Error(0)
}

func (m *mockDocumentStore) AddExpenseClaims(ctx context.Context, claims []store.ExpenseClaim) error {
	return m.Called(ctx, claims).Error(0)
}

func (m *mockDocumentStore) AddCompanies(ctx context.Context, companies []store.Company) error {
	return m.Called(ctx, companies).Error(0)
}

// expectEmptyStore stubs every category query with an empty result.
func (m *mockDocumentStore) expectEmptyStore() {
	m.On("Orders", mock.Anything, mock.Anything, mock.Anything).Return([]store.Order{}, nil)
	m.On("Invoices", mock.Anything, mock.Anything, mock.Anything).Return([]store.Invoice{}, nil)
	m.On("ActiveSchedules", mock.Anything, mock.Anything).Return([]store.RepeatSchedule{}, nil)
	m.On("Employees", mock.Anything, mock.Anything).Return([]store.Employee{}, nil)
	m.On("ExpenseClaims", mock.Anything, mock.Anything).Return([]store.ExpenseClaim{}, nil)
}

// fakeNormalizer converts through a fixed rate table keyed by
// "FROM->TO"; identical currencies pass through untouched.
type fakeNormalizer struct {
	rates map[string]float64
}

func (f *fakeNormalizer) Normalize(_ context.Context, amount float64, from, to string, _ time.Time) (float64, error) {
	if from == to {
		return amount, nil
	}
	rate, ok := f.rates[from+"->"+to]
	if !ok {
		return 0, fmt.Errorf("exchange rate not found: %s -> %s", from, to)
	}
	return amount * rate, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

// monthlyPeriods builds n calendar-month periods starting at the given
// month, keyed and labeled like the period generator.
func monthlyPeriods(year int, month time.Month, n int) []domain.Period {
	var out []domain.Period
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		from := start.AddDate(0, i, 0)
		out = append(out, domain.Period{
			Key:   fmt.Sprintf("p%d", i+1),
			From:  from,
			To:    from.AddDate(0, 1, -1),
			Label: from.Format("Jan 2006"),
		})
	}
	return out
}

func testFilters(company string) domain.Filters {
	return domain.Filters{
		FromDate:             day(2026, 2, 1),
		ToDate:               day(2026, 3, 31),
		Periodicity:          domain.PeriodicityMonthly,
		Company:              company,
		PresentationCurrency: "EUR",
	}
}

func newTestEngine(docs *mockDocumentStore, rates map[string]float64) *Engine {
	return NewEngine(docs, &fakeNormalizer{rates: rates}, WithClock(func() time.Time {
		return day(2026, 2, 15)
	}))
}

package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/de-tools/liquidity-atlas/pkg/services/periods"
	"github.com/rs/zerolog"
)

// Controller runs complete forecast reports.
type Controller interface {
	GenerateForecast(ctx context.Context, f domain.Filters) (*domain.Report, error)
	Companies(ctx context.Context) ([]domain.Company, error)
}

type controller struct {
	engine   *Engine
	generate func(from, to time.Time, p domain.Periodicity) ([]domain.Period, error)
}

func NewController(engine *Engine) Controller {
	return &controller{
		engine:   engine,
		generate: periods.Generate,
	}
}

// GenerateForecast computes one report: build the period list, aggregate
// each category from a single store query, roll the maps up into group
// totals, and assemble rows, chart and summary. Every category either
// completes fully or fails the run; a failed category never leaks partial
// amounts into the totals.
func (c *controller) GenerateForecast(ctx context.Context, f domain.Filters) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast filters: %w", err)
	}

	periodList, err := c.generate(f.FromDate, f.ToDate, f.Periodicity)
	if err != nil {
		return nil, fmt.Errorf("period generation: %w", err)
	}

	salesSubmitted, salesBilled, err := c.engine.OrdersSubmittedAndBilled(ctx, periodList, domain.DocKindSalesOrder, f)
	if err != nil {
		return nil, fmt.Errorf("sales orders: %w", err)
	}
	salesScheduled, err := c.engine.ScheduledOrders(ctx, periodList, domain.DocKindSalesOrder, f)
	if err != nil {
		return nil, fmt.Errorf("scheduled sales orders: %w", err)
	}
	salesInvoices, err := c.engine.Invoices(ctx, periodList, domain.DocKindSalesInvoice, f)
	if err != nil {
		return nil, fmt.Errorf("sales invoices: %w", err)
	}

	purchaseSubmitted, purchaseBilled, err := c.engine.OrdersSubmittedAndBilled(ctx, periodList, domain.DocKindPurchaseOrder, f)
	if err != nil {
		return nil, fmt.Errorf("purchase orders: %w", err)
	}
	purchaseScheduled, err := c.engine.ScheduledOrders(ctx, periodList, domain.DocKindPurchaseOrder, f)
	if err != nil {
		return nil, fmt.Errorf("scheduled purchase orders: %w", err)
	}
	purchaseInvoices, err := c.engine.Invoices(ctx, periodList, domain.DocKindPurchaseInvoice, f)
	if err != nil {
		return nil, fmt.Errorf("purchase invoices: %w", err)
	}
	salaries, err := c.engine.Salaries(ctx, periodList, f)
	if err != nil {
		return nil, fmt.Errorf("salaries: %w", err)
	}
	expenseClaims, err := c.engine.ExpenseClaims(ctx, periodList, f)
	if err != nil {
		return nil, fmt.Errorf("expense claims: %w", err)
	}

	categories := CategorySet{
		SalesSubmitted:    salesSubmitted.Amounts,
		SalesBilled:       salesBilled.Amounts,
		SalesScheduled:    salesScheduled.Amounts,
		SalesInvoices:     salesInvoices.Amounts,
		PurchaseSubmitted: purchaseSubmitted.Amounts,
		PurchaseBilled:    purchaseBilled.Amounts,
		PurchaseScheduled: purchaseScheduled.Amounts,
		PurchaseInvoices:  purchaseInvoices.Amounts,
		Salaries:          salaries.Amounts,
		ExpenseClaims:     expenseClaims.Amounts,
	}
	totals := RollUp(periodList, categories)

	skipped := salesSubmitted.Skipped + salesScheduled.Skipped + salesInvoices.Skipped +
		purchaseSubmitted.Skipped + purchaseScheduled.Skipped + purchaseInvoices.Skipped +
		salaries.Skipped + expenseClaims.Skipped

	logger.Info().
		Int("periods", len(periodList)).
		Str("periodicity", string(f.Periodicity)).
		Int("skipped_records", skipped).
		Float64("net_cash_flow", totals.NetCashFlow[domain.TotalKey]).
		Msg("forecast computed")

	report := AssembleReport(periodList, f, categories, totals)
	if skipped > 0 {
		report.Message = fmt.Sprintf("%d records were excluded for missing or inconsistent data", skipped)
	}
	return report, nil
}

func (c *controller) Companies(ctx context.Context) ([]domain.Company, error) {
	return c.engine.Companies(ctx)
}

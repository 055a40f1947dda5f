package forecast

import (
	"fmt"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
)

// AssembleReport renders the rolled-up run into the fixed presentation
// hierarchy: income rows, a separator, expense rows, a separator, then
// the closing totals. It also derives the chart series and the summary
// tiles from the grand totals.
func AssembleReport(
	periods []domain.Period,
	f domain.Filters,
	c CategorySet,
	t Totals,
) *domain.Report {
	pc := f.PresentationCurrency
	separator := domain.Row{Currency: pc}

	rows := []domain.Row{
		{Label: "Income", Indent: 0, IsGroup: true, Bold: true, Currency: pc, Amounts: t.Income},
		{Label: "Sales Orders", Indent: 1, IsGroup: true, Currency: pc, Amounts: t.SalesOrders},
		{Label: "Sales Orders (Submitted)", Indent: 2, Currency: pc, Amounts: c.SalesSubmitted},
		{Label: "Sales Orders (Billed)", Indent: 2, Currency: pc, Amounts: c.SalesBilled},
		{Label: "Sales Orders (Scheduled)", Indent: 2, Currency: pc, Amounts: c.SalesScheduled},
		{Label: "Sales Invoices", Indent: 1, Currency: pc, Amounts: c.SalesInvoices},
		separator,
		{Label: "Expenses", Indent: 0, IsGroup: true, Bold: true, Currency: pc, Amounts: t.Expenses},
		{Label: "Purchase Orders", Indent: 1, IsGroup: true, Currency: pc, Amounts: t.PurchaseOrders},
		{Label: "Purchase Orders (Submitted)", Indent: 2, Currency: pc, Amounts: c.PurchaseSubmitted},
		{Label: "Purchase Orders (Billed)", Indent: 2, Currency: pc, Amounts: c.PurchaseBilled},
		{Label: "Purchase Orders (Scheduled)", Indent: 2, Currency: pc, Amounts: c.PurchaseScheduled},
		{Label: "Purchase Invoices", Indent: 1, Currency: pc, Amounts: c.PurchaseInvoices},
		{Label: "Salaries", Indent: 1, Currency: pc, Amounts: c.Salaries},
		{Label: "Expense Claims", Indent: 1, Currency: pc, Amounts: c.ExpenseClaims},
		separator,
		{Label: "Total Income", Indent: 0, Bold: true, Currency: pc, Amounts: t.Income},
		{Label: "Total Expenses", Indent: 0, Bold: true, Currency: pc, Amounts: t.Expenses},
		{Label: "Net Cash Flow", Indent: 0, Bold: true, WarnIfNegative: true, Currency: pc, Amounts: t.NetCashFlow},
	}

	return &domain.Report{
		Periods: periods,
		Rows:    rows,
		Chart:   assembleChart(periods, f.Periodicity, t),
		Summary: assembleSummary(pc, t),
	}
}

func assembleChart(periods []domain.Period, periodicity domain.Periodicity, t Totals) domain.Chart {
	labels := make([]string, 0, len(periods)+1)
	for _, p := range periods {
		labels = append(labels, p.Label)
	}
	keys := domain.PeriodKeys(periods)
	if periodicity != domain.PeriodicityYearly {
		labels = append(labels, "Total")
		keys = append(keys, domain.TotalKey)
	}

	series := func(m domain.AmountMap) []string {
		values := make([]string, 0, len(keys))
		for _, key := range keys {
			values = append(values, fmt.Sprintf("%.2f", m[key]))
		}
		return values
	}

	return domain.Chart{
		Type:   "bar",
		Labels: labels,
		Datasets: []domain.ChartDataset{
			{Name: "Income", Values: series(t.Income)},
			{Name: "Expenses", Values: series(t.Expenses)},
			{Name: "Net Cash Flow", Values: series(t.NetCashFlow)},
		},
	}
}

func assembleSummary(presentationCurrency string, t Totals) []domain.SummaryTile {
	indicator := domain.IndicatorGreen
	if t.NetCashFlow[domain.TotalKey] < 0 {
		indicator = domain.IndicatorRed
	}

	return []domain.SummaryTile{
		{Label: "Income", Value: t.Income[domain.TotalKey], Currency: presentationCurrency},
		{Label: "Expenses", Value: t.Expenses[domain.TotalKey], Currency: presentationCurrency},
		{Label: "Net Cash Flow", Value: t.NetCashFlow[domain.TotalKey], Currency: presentationCurrency, Indicator: indicator},
	}
}

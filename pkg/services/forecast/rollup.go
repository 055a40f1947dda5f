package forecast

import "github.com/de-tools/liquidity-atlas/pkg/models/domain"

// CategorySet holds the per-category aggregates of one run, already
// normalized into the presentation currency.
type CategorySet struct {
	SalesSubmitted    domain.AmountMap
	SalesBilled       domain.AmountMap
	SalesScheduled    domain.AmountMap
	SalesInvoices     domain.AmountMap
	PurchaseSubmitted domain.AmountMap
	PurchaseBilled    domain.AmountMap
	PurchaseScheduled domain.AmountMap
	PurchaseInvoices  domain.AmountMap
	Salaries          domain.AmountMap
	ExpenseClaims     domain.AmountMap
}

// Totals are the rolled-up group and grand totals. They are pure sums of
// the category maps; rollup never recomputes from source records, so
// every row reconciles with its constituents by construction.
type Totals struct {
	SalesOrders    domain.AmountMap
	Income         domain.AmountMap
	PurchaseOrders domain.AmountMap
	Expenses       domain.AmountMap
	NetCashFlow    domain.AmountMap
}

func RollUp(periods []domain.Period, c CategorySet) Totals {
	salesOrders := domain.SumAmounts(periods, c.SalesSubmitted, c.SalesBilled, c.SalesScheduled)
	income := domain.SumAmounts(periods, salesOrders, c.SalesInvoices)

	purchaseOrders := domain.SumAmounts(periods, c.PurchaseSubmitted, c.PurchaseBilled, c.PurchaseScheduled)
	expenses := domain.SumAmounts(periods, purchaseOrders, c.PurchaseInvoices, c.Salaries, c.ExpenseClaims)

	return Totals{
		SalesOrders:    salesOrders,
		Income:         income,
		PurchaseOrders: purchaseOrders,
		Expenses:       expenses,
		NetCashFlow:    domain.SubtractAmounts(periods, income, expenses),
	}
}

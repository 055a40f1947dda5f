package forecast

import (
	"context"
	"fmt"

	"github.com/de-tools/liquidity-atlas/pkg/adapters"
	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// OrdersSubmittedAndBilled aggregates the given order stream twice from a
// single query: the full grand total of each order (outstanding demand),
// and the already-billed portion as a negative adjustment in the same
// period as the order's transaction date.
func (e *Engine) OrdersSubmittedAndBilled(
	ctx context.Context,
	periods []domain.Period,
	kind domain.DocKind,
	f domain.Filters,
) (submitted, billed domain.CategoryResult, err error) {
	logger := zerolog.Ctx(ctx)

	records, err := e.documents.Orders(ctx, string(kind), horizon(periods, f.Company))
	if err != nil {
		return submitted, billed, fmt.Errorf("%s query: %w", kind, err)
	}

	var submittedEntries, billedEntries []entry
	skipped := 0
	for _, record := range records {
		order := adapters.MapStoreOrderToDomain(record)
		if order.TransactionDate.IsZero() {
			skipped++
			continue
		}
		submittedEntries = append(submittedEntries, entry{
			date:     order.TransactionDate,
			amount:   order.GrandTotal,
			currency: order.Currency,
		})
		billedEntries = append(billedEntries, entry{
			date:     order.TransactionDate,
			amount:   -(order.GrandTotal * order.PerBilled / 100),
			currency: order.Currency,
		})
	}

	if skipped > 0 {
		logger.Warn().
			Str("category", string(kind)).
			Int("skipped", skipped).
			Msg("orders without a transaction date excluded from forecast")
	}

	submittedAmounts, err := e.bucket(ctx, periods, submittedEntries, f.PresentationCurrency)
	if err != nil {
		return submitted, billed, fmt.Errorf("%s submitted: %w", kind, err)
	}
	billedAmounts, err := e.bucket(ctx, periods, billedEntries, f.PresentationCurrency)
	if err != nil {
		return submitted, billed, fmt.Errorf("%s billed: %w", kind, err)
	}

	submitted = domain.CategoryResult{Amounts: submittedAmounts, Skipped: skipped}
	billed = domain.CategoryResult{Amounts: billedAmounts, Skipped: skipped}
	return submitted, billed, nil
}

// ScheduledOrders expands every active repeat schedule bound to the given
// order stream into its future occurrences and sums the reference order's
// grand total once per occurrence. A schedule whose reference order
// belongs to a different company than the filter is skipped entirely.
func (e *Engine) ScheduledOrders(
	ctx context.Context,
	periods []domain.Period,
	kind domain.DocKind,
	f domain.Filters,
) (domain.CategoryResult, error) {
	logger := zerolog.Ctx(ctx)

	schedules, err := e.documents.ActiveSchedules(ctx, string(kind))
	if err != nil {
		return domain.CategoryResult{}, fmt.Errorf("%s schedules query: %w", kind, err)
	}

	horizonEnd := periods[len(periods)-1].To
	var entries []entry
	skipped := 0
	for _, record := range schedules {
		schedule := adapters.MapStoreScheduleToDomain(record)

		orderRecord, err := e.documents.Order(ctx, string(kind), schedule.ReferenceName)
		if err != nil {
			skipped++
			logger.Warn().
				Str("schedule", schedule.Name).
				Str("reference", schedule.ReferenceName).
				Msg("repeat schedule reference not found, schedule excluded")
			continue
		}
		order := adapters.MapStoreOrderToDomain(*orderRecord)

		if f.Company != "" && order.Company != f.Company {
			continue
		}

		occurrences, err := expandOccurrences(schedule, horizonEnd)
		if err != nil {
			skipped++
			logger.Warn().
				Str("schedule", schedule.Name).
				Err(err).
				Msg("repeat schedule excluded")
			continue
		}

		for _, occurrence := range occurrences {
			entries = append(entries, entry{
				date:     occurrence,
				amount:   order.GrandTotal,
				currency: order.Currency,
			})
		}
	}

	amounts, err := e.bucket(ctx, periods, entries, f.PresentationCurrency)
	if err != nil {
		return domain.CategoryResult{}, fmt.Errorf("%s scheduled: %w", kind, err)
	}
	return domain.CategoryResult{Amounts: amounts, Skipped: skipped}, nil
}

// Invoices aggregates invoice grand totals into the period containing the
// due date.
func (e *Engine) Invoices(
	ctx context.Context,
	periods []domain.Period,
	kind domain.DocKind,
	f domain.Filters,
) (domain.CategoryResult, error) {
	logger := zerolog.Ctx(ctx)

	records, err := e.documents.Invoices(ctx, string(kind), horizon(periods, f.Company))
	if err != nil {
		return domain.CategoryResult{}, fmt.Errorf("%s query: %w", kind, err)
	}

	var entries []entry
	skipped := 0
	for _, record := range records {
		invoice := adapters.MapStoreInvoiceToDomain(record)
		if invoice.DueDate.IsZero() {
			skipped++
			continue
		}
		entries = append(entries, entry{
			date:     invoice.DueDate,
			amount:   invoice.GrandTotal,
			currency: invoice.Currency,
		})
	}

	if skipped > 0 {
		logger.Warn().
			Str("category", string(kind)).
			Int("skipped", skipped).
			Msg("invoices without a due date excluded from forecast")
	}

	amounts, err := e.bucket(ctx, periods, entries, f.PresentationCurrency)
	if err != nil {
		return domain.CategoryResult{}, fmt.Errorf("%s: %w", kind, err)
	}
	return domain.CategoryResult{Amounts: amounts, Skipped: skipped}, nil
}

// ExpenseClaims aggregates claimed amounts into the period containing the
// posting date. Claims carry no currency of their own; the owning
// company's default currency applies.
func (e *Engine) ExpenseClaims(
	ctx context.Context,
	periods []domain.Period,
	f domain.Filters,
) (domain.CategoryResult, error) {
	logger := zerolog.Ctx(ctx)

	records, err := e.documents.ExpenseClaims(ctx, horizon(periods, f.Company))
	if err != nil {
		return domain.CategoryResult{}, fmt.Errorf("expense claims query: %w", err)
	}

	currencies := map[string]string{}
	var entries []entry
	skipped := 0
	for _, record := range records {
		claim := adapters.MapStoreExpenseClaimToDomain(record)
		if claim.PostingDate.IsZero() {
			skipped++
			continue
		}

		claimCurrency, ok := currencies[claim.Company]
		if !ok {
			claimCurrency, err = e.documents.DefaultCurrency(ctx, claim.Company)
			if err != nil {
				skipped++
				logger.Warn().
					Str("claim", claim.Name).
					Str("company", claim.Company).
					Msg("expense claim with unknown company excluded")
				continue
			}
			currencies[claim.Company] = claimCurrency
		}

		entries = append(entries, entry{
			date:     claim.PostingDate,
			amount:   claim.TotalClaimed,
			currency: claimCurrency,
		})
	}

	if skipped > 0 {
		logger.Warn().
			Int("skipped", skipped).
			Msg("expense claims excluded from forecast")
	}

	amounts, err := e.bucket(ctx, periods, entries, f.PresentationCurrency)
	if err != nil {
		return domain.CategoryResult{}, fmt.Errorf("expense claims: %w", err)
	}
	return domain.CategoryResult{Amounts: amounts, Skipped: skipped}, nil
}

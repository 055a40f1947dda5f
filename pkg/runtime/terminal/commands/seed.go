package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/store"
	"github.com/de-tools/liquidity-atlas/pkg/services/forecast"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/documents"
	"github.com/de-tools/liquidity-atlas/pkg/store/duckdb/rates"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type SeedCmd struct {
	profile  string
	registry forecast.Registry
}

// NewSeedCmd loads a small demo dataset into the profile's database so
// the forecast command has something to show on a fresh install.
func NewSeedCmd(registry forecast.Registry) *cobra.Command {
	sc := &SeedCmd{registry: registry}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a demo dataset into the profile's database",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.profile, "profile", "", "Config profile to seed")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (sc *SeedCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	session, err := sc.registry.Create(ctx, sc.profile)
	if err != nil {
		return fmt.Errorf("failed to open profile %q: %w", sc.profile, err)
	}
	defer session.Close()

	err = session.Transact(ctx, func(ctx context.Context) error {
		if err := seedDocuments(ctx, session.Documents); err != nil {
			return fmt.Errorf("failed to seed documents: %w", err)
		}
		if err := seedRates(ctx, session.Rates); err != nil {
			return fmt.Errorf("failed to seed exchange rates: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Demo dataset loaded")
	return nil
}

func seedDocuments(ctx context.Context, docs documents.Store) error {
	today := time.Now().Truncate(24 * time.Hour)
	day := func(offset int) *time.Time {
		d := today.AddDate(0, 0, offset)
		return &d
	}

	if err := docs.AddCompanies(ctx, []store.Company{
		{Name: "Alpha GmbH", DefaultCurrency: "EUR"},
	}); err != nil {
		return err
	}

	if err := docs.AddOrders(ctx, []store.Order{
		{Kind: "sales_order", Name: "SO-0001", Company: "Alpha GmbH", Status: "To Deliver and Bill",
			TransactionDate: day(10), GrandTotal: 12000, Currency: "EUR"},
		{Kind: "sales_order", Name: "SO-0002", Company: "Alpha GmbH", Status: "To Bill",
			TransactionDate: day(35), GrandTotal: 8000, PerBilled: 25, Currency: "EUR"},
		{Kind: "sales_order", Name: "SO-0003", Company: "Alpha GmbH", Status: "To Deliver and Bill",
			TransactionDate: day(50), GrandTotal: 4500, Currency: "USD"},
		{Kind: "purchase_order", Name: "PO-0001", Company: "Alpha GmbH", Status: "To Receive and Bill",
			TransactionDate: day(20), GrandTotal: 5000, Currency: "EUR"},
		{Kind: "purchase_order", Name: "PO-0002", Company: "Alpha GmbH", Status: "To Receive",
			TransactionDate: day(42), GrandTotal: 1500, PerBilled: 50, Currency: "EUR"},
	}); err != nil {
		return err
	}

	if err := docs.AddInvoices(ctx, []store.Invoice{
		{Kind: "sales_invoice", Name: "SINV-0001", Company: "Alpha GmbH", Status: "Unpaid",
			DueDate: day(14), GrandTotal: 6200, Currency: "EUR"},
		{Kind: "purchase_invoice", Name: "PINV-0001", Company: "Alpha GmbH", Status: "Unpaid",
			DueDate: day(7), GrandTotal: 2800, Currency: "EUR"},
	}); err != nil {
		return err
	}

	if err := docs.AddSchedules(ctx, []store.RepeatSchedule{
		{Name: "AR-0001", ReferenceKind: "sales_order", ReferenceName: "SO-0001",
			Status: "Active", Frequency: "monthly", NextDate: today.AddDate(0, 1, 0)},
		{Name: "AR-0002", ReferenceKind: "purchase_order", ReferenceName: "PO-0001",
			Status: "Active", Frequency: "monthly", NextDate: today.AddDate(0, 1, 5),
			EndDate: day(200)},
	}); err != nil {
		return err
	}

	if err := docs.AddEmployees(ctx, []store.Employee{
		{Name: "HR-EMP-0001", Company: "Alpha GmbH", CTC: 4800, SalaryCurrency: "EUR",
			DateOfJoining: today.AddDate(-2, 0, 0)},
		{Name: "HR-EMP-0002", Company: "Alpha GmbH", CTC: 5200, SalaryCurrency: "EUR",
			DateOfJoining: today.AddDate(0, 0, 15)},
	}); err != nil {
		return err
	}

	return docs.AddExpenseClaims(ctx, []store.ExpenseClaim{
		{Name: "EXP-0001", Company: "Alpha GmbH", Status: "Submitted",
			PostingDate: day(5), TotalClaimed: 340},
	})
}

func seedRates(ctx context.Context, rateStore rates.Store) error {
	return rateStore.Add(ctx, []rates.Rate{
		{FromCurrency: "USD", ToCurrency: "EUR", Date: time.Now().AddDate(0, 0, -1),
			Rate: decimal.RequireFromString("0.92")},
		{FromCurrency: "EUR", ToCurrency: "USD", Date: time.Now().AddDate(0, 0, -1),
			Rate: decimal.RequireFromString("1.09")},
	})
}

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/de-tools/liquidity-atlas/pkg/services/forecast"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// Handler renders a finished forecast report.
type Handler interface {
	Handle(report *domain.Report) error
}

type ForecastCmd struct {
	profile     string
	company     string
	from        string
	to          string
	periodicity string
	currency    string
	summaryOnly bool

	registry        forecast.Registry
	reporter        Handler
	summaryReporter Handler
}

func NewForecastCmd(registry forecast.Registry, reporter, summaryReporter Handler) *cobra.Command {
	fc := &ForecastCmd{
		registry:        registry,
		reporter:        reporter,
		summaryReporter: summaryReporter,
	}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project cash inflows and outflows over a date range",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.profile, "profile", "", "Config profile to use")
	cmd.Flags().StringVar(&fc.company, "company", "", "Company to forecast (defaults to the profile's company)")
	cmd.Flags().StringVar(&fc.from, "from", "", "Start of the horizon (YYYY-MM-DD)")
	cmd.Flags().StringVar(&fc.to, "to", "", "End of the horizon (YYYY-MM-DD)")
	cmd.Flags().StringVar(&fc.periodicity, "periodicity", "", "Bucket size: weekly, monthly, quarterly or yearly")
	cmd.Flags().StringVar(&fc.currency, "currency", "", "Presentation currency (defaults to the profile's)")
	cmd.Flags().BoolVar(&fc.summaryOnly, "summary", false, "Print the summary tiles only")

	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (fc *ForecastCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	session, err := fc.registry.Create(ctx, fc.profile)
	if err != nil {
		return fmt.Errorf("failed to open profile %q: %w", fc.profile, err)
	}
	defer session.Close()

	filters, err := fc.buildFilters(session)
	if err != nil {
		return err
	}

	report, err := session.Controller.GenerateForecast(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to generate forecast: %w", err)
	}

	if fc.summaryOnly {
		return fc.summaryReporter.Handle(report)
	}
	return fc.reporter.Handle(report)
}

func (fc *ForecastCmd) buildFilters(session *forecast.Session) (domain.Filters, error) {
	from, err := time.Parse(dateLayout, fc.from)
	if err != nil {
		return domain.Filters{}, fmt.Errorf("invalid --from date %q, expected YYYY-MM-DD", fc.from)
	}
	to, err := time.Parse(dateLayout, fc.to)
	if err != nil {
		return domain.Filters{}, fmt.Errorf("invalid --to date %q, expected YYYY-MM-DD", fc.to)
	}

	filters := domain.Filters{
		FromDate:             from,
		ToDate:               to,
		Periodicity:          session.Profile.Periodicity,
		Company:              session.Profile.Company,
		PresentationCurrency: session.Profile.PresentationCurrency,
	}
	if fc.periodicity != "" {
		filters.Periodicity = domain.Periodicity(fc.periodicity)
	}
	if fc.company != "" {
		filters.Company = fc.company
	}
	if fc.currency != "" {
		filters.PresentationCurrency = fc.currency
	}
	return filters, filters.Validate()
}

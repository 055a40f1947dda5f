package adapters

import (
	"github.com/de-tools/liquidity-atlas/pkg/models/api"
	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
)

// MapReportDomainToApi renders the forecast for transport. Column metadata
// is derived here from the period list; the engine itself never builds
// columns.
func MapReportDomainToApi(report *domain.Report) api.ForecastReport {
	out := api.ForecastReport{
		Columns: mapPeriodColumns(report.Periods),
		Rows:    make([]api.Row, 0, len(report.Rows)),
		Message: report.Message,
		Chart:   mapChartDomainToApi(report.Chart),
		Summary: make([]api.SummaryTile, 0, len(report.Summary)),
	}

	for _, row := range report.Rows {
		out.Rows = append(out.Rows, api.Row{
			Label:          row.Label,
			Indent:         row.Indent,
			IsGroup:        row.IsGroup,
			Bold:           row.Bold,
			WarnIfNegative: row.WarnIfNegative,
			Currency:       row.Currency,
			Amounts:        row.Amounts,
		})
	}

	for _, tile := range report.Summary {
		out.Summary = append(out.Summary, api.SummaryTile{
			Label:     tile.Label,
			Value:     tile.Value,
			Currency:  tile.Currency,
			Indicator: string(tile.Indicator),
		})
	}

	return out
}

func mapPeriodColumns(periods []domain.Period) []api.Column {
	columns := []api.Column{{Key: "label", Label: "Category"}}
	for _, p := range periods {
		columns = append(columns, api.Column{Key: p.Key, Label: p.Label})
	}
	columns = append(columns, api.Column{Key: domain.TotalKey, Label: "Total"})
	return columns
}

func mapChartDomainToApi(chart domain.Chart) api.Chart {
	out := api.Chart{
		Type:     chart.Type,
		Labels:   chart.Labels,
		Datasets: make([]api.ChartDataset, 0, len(chart.Datasets)),
	}
	for _, ds := range chart.Datasets {
		out.Datasets = append(out.Datasets, api.ChartDataset{Name: ds.Name, Values: ds.Values})
	}
	return out
}

func MapCompanyDomainToApi(c domain.Company) api.Company {
	return api.Company{Name: c.Name, DefaultCurrency: c.DefaultCurrency}
}

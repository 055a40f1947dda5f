package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
)

type TableConfig struct {
	LabelWidth  int
	AmountWidth int
	IndentStep  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth:  32,
		AmountWidth: 14,
		IndentStep:  2,
	}
}

// Reporter renders a forecast as a fixed-width table, one column per
// period plus a trailing total.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	keys := append(domain.PeriodKeys(report.Periods), domain.TotalKey)

	funcMap := template.FuncMap{
		"headerRow": func() string {
			cells := []string{fmt.Sprintf("| %-*s ", c.config.LabelWidth, "Category")}
			for _, p := range report.Periods {
				cells = append(cells, fmt.Sprintf("| %*s ", c.config.AmountWidth, p.Label))
			}
			cells = append(cells, fmt.Sprintf("| %*s |", c.config.AmountWidth, "Total"))
			return strings.Join(cells, "")
		},
		"amountRow": func(row domain.Row) string {
			label := strings.Repeat(" ", row.Indent*c.config.IndentStep) + row.Label
			cells := []string{fmt.Sprintf("| %-*s ", c.config.LabelWidth, label)}
			for i, key := range keys {
				closing := " "
				if i == len(keys)-1 {
					closing = " |"
				}
				if row.Amounts == nil {
					cells = append(cells, fmt.Sprintf("| %*s%s", c.config.AmountWidth, "", closing))
					continue
				}
				cells = append(cells, fmt.Sprintf("| %*.2f%s", c.config.AmountWidth, row.Amounts[key], closing))
			}
			return strings.Join(cells, "")
		},
		"separator": func() string {
			parts := []string{"+" + strings.Repeat("-", c.config.LabelWidth+2)}
			for range keys {
				parts = append(parts, "+"+strings.Repeat("-", c.config.AmountWidth+2))
			}
			return strings.Join(parts, "") + "+"
		},
		"tile": func(tile domain.SummaryTile) string {
			out := fmt.Sprintf("%s: %s %.2f", tile.Label, tile.Currency, tile.Value)
			if tile.Indicator != "" {
				out += fmt.Sprintf(" [%s]", tile.Indicator)
			}
			return out
		},
	}

	tmpl := `{{separator}}
{{headerRow}}
{{separator}}
{{range .Rows}}{{amountRow .}}
{{end}}{{separator}}

{{range .Summary}}{{tile .}}
{{end}}{{if .Message}}
{{.Message}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

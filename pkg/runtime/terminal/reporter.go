package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
)

// Reporter prints the summary tiles only, for quick checks without the
// full period table.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{range .Summary}}{{.Label}}: {{.Currency}} {{printf "%.2f" .Value}}{{if .Indicator}} [{{.Indicator}}]{{end}}
{{end}}{{if .Message}}
{{.Message}}
{{end}}`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

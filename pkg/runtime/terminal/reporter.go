package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/trontec/extras-atlas/pkg/models/domain"
	"github.com/trontec/extras-atlas/pkg/services/normalize"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
	ExtraWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  36,
		ValueWidth: 16,
		ExtraWidth: 14,
	}
}

// Reporter renders aggregation results as text tables.
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

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(name string, value string, extra string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.ExtraWidth, extra)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.ExtraWidth+2))
		},
		"currency":      normalize.FormatCurrency,
		"currencyShort": normalize.FormatCurrencyShort,
		"percent": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
	}
}

func (c *Reporter) render(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(c.funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

func (c *Reporter) HandleSummary(s domain.Summary) error {
	tmpl := `
Extras Summary

Records:       {{.RecordCount}}
Total Value:   {{currency .TotalValue}}
Billable:      {{currency .BillableValue}}
Collaborators: {{.CollaboratorCount}}
Avg Ticket:    {{currency .AverageTicket}}
`
	return c.render("summary", tmpl, s)
}

func (c *Reporter) HandleCategoryTable(title string, rows []domain.CategoryTotal) error {
	tmpl := `
{{.Title}}

{{separator}}
{{formatRow "Category" "Total" ""}}
{{separator}}
{{range .Rows}}{{formatRow .Category (currency .Total) ""}}
{{end}}{{separator}}
`
	return c.render("categories", tmpl, struct {
		Title string
		Rows  []domain.CategoryTotal
	}{title, rows})
}

func (c *Reporter) HandlePareto(chart []domain.CategoryTotal, analysis domain.ParetoAnalysis) error {
	tmpl := `
Pareto (80/20): the first {{.Analysis.Count80}} categories carry {{percent .Analysis.CutoffPercent}} of the total cost.

{{separator}}
{{formatRow "Category" "Total" "Cumulative"}}
{{separator}}
{{range .Analysis.Rows}}{{formatRow .Category (currency .Total) (percent .CumulativePercent)}}
{{end}}{{separator}}
`
	return c.render("pareto", tmpl, struct {
		Chart    []domain.CategoryTotal
		Analysis domain.ParetoAnalysis
	}{chart, analysis})
}

func (c *Reporter) HandleLastWeek(report domain.LastWeekReport) error {
	if report.Empty {
		_, err := fmt.Fprintf(c.writer, "\nNo records between %s and %s.\n",
			report.Range.Start.Format("2006-01-02"), report.Range.End.Format("2006-01-02"))
		return err
	}

	tmpl := `
Previous Week ({{.Range.Start.Format "02/01"}} - {{.Range.End.Format "02/01"}})

Total Cost: {{currency .Summary.TotalValue}}
Callouts:   {{.Summary.RecordCount}}
Avg Ticket: {{currency .Summary.AverageTicket}}
Recovery:   {{percent .RecoveryPercent}}

{{separator}}
{{formatRow "Day" "Total" ""}}
{{separator}}
{{range .Daily}}{{formatRow .Name (currency .Total) ""}}
{{end}}{{separator}}

Top Sites
{{separator}}
{{formatRow "Site" "Total" ""}}
{{separator}}
{{range .TopSites}}{{formatRow .Category (currency .Total) ""}}
{{end}}{{separator}}
`
	return c.render("lastweek", tmpl, report)
}

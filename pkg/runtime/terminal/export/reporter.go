package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/tonyloki/-EcoSense-AI/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
	UnitWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  32,
		ValueWidth: 16,
		UnitWidth:  10,
	}
}

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

type metricRow struct {
	Name  string
	Value string
	Unit  string
}

type reportView struct {
	Title      string
	Resource   string
	Unit       string
	Records    int
	Metrics    []metricRow
	Facilities []metricRow
	IssueTitle string
	Issues     []metricRow
}

const reportTemplate = `
{{.Title}}

Resource: {{.Resource}} ({{.Unit}})
Records Analyzed: {{.Records}}

{{separator}}
{{formatRow "Metric" "Value" "Unit"}}
{{separator}}
{{range .Metrics}}{{formatRow .Name .Value .Unit}}
{{end}}{{separator}}

=== Facility Analysis ===
{{separator}}
{{formatRow "Facility" "Total / Avg" "Anomalies"}}
{{separator}}
{{range .Facilities}}{{formatRow .Name .Value .Unit}}
{{end}}{{separator}}

=== {{.IssueTitle}} ===
{{range .Issues}}{{.Name}}: {{.Value}}
{{end}}`

// Handle renders an analysis result as a plain-text report.
func (r *Reporter) Handle(result *domain.AnalysisResult) error {
	view := buildView(result)

	funcMap := template.FuncMap{
		"formatRow": func(name, value, unit string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				r.config.NameWidth, name,
				r.config.ValueWidth, value,
				r.config.UnitWidth, unit)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", r.config.NameWidth+2),
				strings.Repeat("-", r.config.ValueWidth+2),
				strings.Repeat("-", r.config.UnitWidth+2))
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, view)
}

// HandleError renders the uniform error shape the analysis contract exposes.
func (r *Reporter) HandleError(reason string) error {
	_, err := fmt.Fprintf(r.writer, "error: %s\n", reason)
	return err
}

// HandleAnomalies renders flagged records sorted by value descending.
func (r *Reporter) HandleAnomalies(resource domain.ResourceType, records []domain.ConsumptionRecord, limit int) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(r.writer, "No anomalous readings.")
		return err
	}
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	for _, rec := range records {
		_, err := fmt.Fprintf(r.writer, "%s %02d:00  %-24s %10.2f %s  (severity %+.2f)\n",
			rec.Timestamp.Format("2006-01-02"), rec.Hour, rec.Facility,
			rec.Value, resource.Unit(), rec.AnomalySeverity)
		if err != nil {
			return err
		}
	}
	return nil
}

// HandleText writes free-form output such as a generated insight.
func (r *Reporter) HandleText(text string) error {
	_, err := fmt.Fprintln(r.writer, text)
	return err
}

func buildView(result *domain.AnalysisResult) reportView {
	unit := result.Resource.Unit()
	view := reportView{
		Title:    "SUSTAINABILITY ANALYSIS REPORT",
		Resource: string(result.Resource),
		Unit:     unit,
		Records:  len(result.Records),
		Metrics: []metricRow{
			{Name: "Total Consumption", Value: fmt.Sprintf("%.2f", result.Total), Unit: unit},
			{Name: "Average Consumption", Value: fmt.Sprintf("%.2f", result.Average), Unit: unit},
			{Name: "Peak Consumption", Value: fmt.Sprintf("%.2f", result.Peak), Unit: unit},
			{Name: "Night-time Consumption", Value: fmt.Sprintf("%.2f", result.NightTotal), Unit: unit},
			{Name: "Anomalies Detected", Value: fmt.Sprintf("%d", result.AnomalyCount), Unit: ""},
			{Name: "Anomaly Threshold", Value: fmt.Sprintf("%.2f", result.Threshold), Unit: unit},
			{Name: "Anomaly Percentage", Value: fmt.Sprintf("%.2f", result.AnomalyPercentage), Unit: "%"},
			{Name: "Consumption Trend", Value: string(result.Trend), Unit: ""},
		},
	}

	names := make([]string, 0, len(result.Facilities))
	for name := range result.Facilities {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rollup := result.Facilities[name]
		view.Facilities = append(view.Facilities, metricRow{
			Name:  name,
			Value: fmt.Sprintf("%.2f / %.2f", rollup.Total, rollup.Average),
			Unit:  fmt.Sprintf("%d", rollup.AnomalyCount),
		})
	}

	switch issues := result.Issues.(type) {
	case domain.NightIdleReport:
		view.IssueTitle = "Night Idle Issues"
		view.Issues = []metricRow{
			{Name: "High night consumption count", Value: fmt.Sprintf("%d", issues.HighNightUsageCount)},
			{Name: "Night consumption percentage", Value: fmt.Sprintf("%.2f%%", issues.NightConsumptionPercent)},
			{Name: "Issue severity", Value: string(issues.Severity)},
		}
	case domain.LeakRiskReport:
		view.IssueTitle = "Potential Leaks"
		atRisk := "none"
		if len(issues.FacilitiesAtRisk) > 0 {
			atRisk = strings.Join(issues.FacilitiesAtRisk, ", ")
		}
		view.Issues = []metricRow{
			{Name: "High anomaly count", Value: fmt.Sprintf("%d", issues.AnomalyCount)},
			{Name: "Facilities at risk", Value: atRisk},
			{Name: "Leak probability", Value: string(issues.LeakProbability)},
		}
	}

	return view
}

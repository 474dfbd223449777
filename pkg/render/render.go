package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/marek-kar/attrisk/pkg/model"
	"github.com/marek-kar/attrisk/pkg/roster"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// EmptyRoster is printed in table mode when a query matched nothing.
const EmptyRoster = "No employees found matching your criteria."

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or csv)", s)
	}
}

type Renderer interface {
	RenderAssessments(w io.Writer, report model.AssessmentReport) error
	RenderRoster(w io.Writer, view model.RosterView) error
	RenderSummary(w io.Writer, summary model.RosterSummary) error
}

func New(f Format) Renderer {
	switch f {
	case FormatJSON:
		return &jsonRenderer{}
	case FormatCSV:
		return &csvRenderer{}
	default:
		return &tableRenderer{}
	}
}

type jsonRenderer struct{}

func (r *jsonRenderer) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *jsonRenderer) RenderAssessments(w io.Writer, report model.AssessmentReport) error {
	return r.encode(w, report)
}

func (r *jsonRenderer) RenderRoster(w io.Writer, view model.RosterView) error {
	return r.encode(w, view)
}

func (r *jsonRenderer) RenderSummary(w io.Writer, summary model.RosterSummary) error {
	return r.encode(w, summary)
}

type tableRenderer struct{}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func (r *tableRenderer) RenderAssessments(w io.Writer, report model.AssessmentReport) error {
	tw := newTabWriter(w)

	fmt.Fprintf(tw, "#\tRISK\tPROBABILITY\tSCORE\tFACTORS\n")
	for i, a := range report.Assessments {
		fmt.Fprintf(tw, "%d\t%s\t%.1f%%\t%d\t%d\n",
			i+1,
			a.Tier.Label(),
			a.Probability,
			a.RawScore,
			scoredFactors(a),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for i, a := range report.Assessments {
		fmt.Fprintf(w, "\n--- %d: %s ---\n", i+1, a.ID)
		fmt.Fprintf(w, "Attrition Risk: %.1f%% (%s)\n", a.Probability, a.Tier.Label())
		fmt.Fprintf(w, "Risk Factors:\n")
		for _, f := range a.Factors {
			fmt.Fprintf(w, "  - %s\n", f)
		}
		fmt.Fprintf(w, "Recommended Actions:\n")
		for n, rec := range a.Recommendations {
			fmt.Fprintf(w, "  %d. %s\n", n+1, rec)
		}
	}

	if report.Summary != nil {
		return renderBatchSummary(w, *report.Summary)
	}
	return nil
}

func scoredFactors(a model.RiskAssessment) int {
	if len(a.Factors) == 1 && a.Factors[0] == model.NoFactorsSentinel {
		return 0
	}
	return len(a.Factors)
}

func renderBatchSummary(w io.Writer, s model.BatchSummary) error {
	fmt.Fprintf(w, "\n=== Batch Summary (%d assessed) ===\n", s.Total)

	tw := newTabWriter(w)
	for _, lvl := range model.RiskLevels {
		fmt.Fprintf(tw, "%s\t%d\n", lvl.Label(), s.ByTier[lvl])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Factors) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\nRisk Factor Distribution:\n")
	tw = newTabWriter(w)
	for _, fc := range s.Factors {
		fmt.Fprintf(tw, "  %s\t%d\n", fc.Factor, fc.Count)
	}
	return tw.Flush()
}

func (r *tableRenderer) RenderRoster(w io.Writer, view model.RosterView) error {
	if view.NoMatches() {
		_, err := fmt.Fprintln(w, EmptyRoster)
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "ID\tNAME\tDEPARTMENT\tROLE\tTENURE\tSATISFACTION\tRISK\tLAST REVIEW\n")
	for _, rec := range view.Records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s (%d/%d)\t%s\t%s\n",
			rec.ID,
			rec.Name,
			rec.Department,
			rec.Role,
			rec.Tenure,
			roster.Stars(rec.SatisfactionRating),
			rec.SatisfactionRating,
			roster.MaxStars,
			rec.RiskLevel.Label(),
			rec.LastReviewDate,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nShowing %d of %d employees\n", view.Matched, view.Total)
	return err
}

func (r *tableRenderer) RenderSummary(w io.Writer, s model.RosterSummary) error {
	tw := newTabWriter(w)

	fmt.Fprintf(tw, "Total Employees\t%d\n", s.Total)
	fmt.Fprintf(tw, "At Risk (High)\t%d\n", s.AtRisk)
	fmt.Fprintf(tw, "At-Risk Rate\t%.1f%%\n", s.AtRiskRate)
	fmt.Fprintf(tw, "Avg Satisfaction\t%.1f/%d\n", s.AverageSatisfaction, roster.MaxStars)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nBy Risk Level:\n")
	tw = newTabWriter(w)
	for _, lvl := range model.RiskLevels {
		fmt.Fprintf(tw, "  %s\t%d\n", lvl.Label(), s.ByRisk[lvl])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nBy Department:\n")
	tw = newTabWriter(w)
	for _, d := range model.Departments {
		if n := s.ByDepartment[d]; n > 0 {
			fmt.Fprintf(tw, "  %s\t%d\n", d, n)
		}
	}
	return tw.Flush()
}

// csvRenderer writes flat rows for spreadsheet export. Multi-valued cells are
// joined with "; ".
type csvRenderer struct{}

func (r *csvRenderer) write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func (r *csvRenderer) RenderAssessments(w io.Writer, report model.AssessmentReport) error {
	header := []string{"id", "job_satisfaction", "work_life_balance", "years_at_company", "overtime", "raw_score", "probability", "tier", "factors", "recommendations"}
	rows := make([][]string, 0, len(report.Assessments))
	for _, a := range report.Assessments {
		overtime := "no"
		if a.Input.OvertimeFrequent {
			overtime = "yes"
		}
		rows = append(rows, []string{
			a.ID,
			strconv.Itoa(a.Input.JobSatisfaction),
			strconv.Itoa(a.Input.WorkLifeBalance),
			strconv.Itoa(a.Input.YearsAtCompany),
			overtime,
			strconv.Itoa(a.RawScore),
			strconv.FormatFloat(a.Probability, 'f', 1, 64),
			string(a.Tier),
			strings.Join(a.Factors, "; "),
			strings.Join(a.Recommendations, "; "),
		})
	}
	return r.write(w, header, rows)
}

func (r *csvRenderer) RenderRoster(w io.Writer, view model.RosterView) error {
	rows := make([][]string, 0, len(view.Records))
	for _, rec := range view.Records {
		rows = append(rows, []string{
			strconv.Itoa(rec.ID),
			rec.Name,
			string(rec.Department),
			rec.Role,
			rec.Tenure,
			strconv.Itoa(rec.SatisfactionRating),
			string(rec.RiskLevel),
			rec.LastReviewDate.String(),
		})
	}
	return r.write(w, roster.CSVHeader, rows)
}

func (r *csvRenderer) RenderSummary(w io.Writer, s model.RosterSummary) error {
	rows := [][]string{
		{"total", strconv.Itoa(s.Total)},
		{"at_risk", strconv.Itoa(s.AtRisk)},
		{"at_risk_rate", strconv.FormatFloat(s.AtRiskRate, 'f', 1, 64)},
		{"average_satisfaction", strconv.FormatFloat(s.AverageSatisfaction, 'f', 1, 64)},
	}
	for _, lvl := range model.RiskLevels {
		rows = append(rows, []string{"risk_" + string(lvl), strconv.Itoa(s.ByRisk[lvl])})
	}
	for _, d := range model.Departments {
		rows = append(rows, []string{"department_" + strings.ToLower(string(d)), strconv.Itoa(s.ByDepartment[d])})
	}
	return r.write(w, []string{"metric", "value"}, rows)
}

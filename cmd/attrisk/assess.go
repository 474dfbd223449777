package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marek-kar/attrisk/pkg/assess"
	"github.com/marek-kar/attrisk/pkg/model"
)

func newAssessCmd(a *app) *cobra.Command {
	var (
		raw     model.RawAttributes
		seed    uint64
		workers int
		input   string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Predict attrition risk for one employee or a file of employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Workers
			}
			if workers < 1 {
				return fmt.Errorf("invalid --workers value %d", workers)
			}

			r, err := a.renderer(cmd, format)
			if err != nil {
				return err
			}

			var src assess.Source
			if seed != 0 {
				src = assess.NewSeededSource(seed)
			}
			assessor := assess.DefaultAssessor(src)

			var report model.AssessmentReport
			if input == "" {
				result := assessor.Assess(assess.ParseAttributes(raw))
				report = model.NewAssessmentReport([]model.RiskAssessment{result})
			} else {
				ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer cancel()

				report, err = a.assessFile(ctx, assessor, input, workers)
				if err != nil {
					return err
				}
			}

			a.metrics.ObserveAssessments(report.Assessments...)
			return r.RenderAssessments(cmd.OutOrStdout(), report)
		},
	}

	f := cmd.Flags()
	f.StringVar(&raw.JobSatisfaction, "job-satisfaction", "", "job satisfaction rating 1-5 (default 3)")
	f.StringVar(&raw.WorkLifeBalance, "work-life-balance", "", "work-life balance rating 1-5 (default 3)")
	f.StringVar(&raw.YearsAtCompany, "years", "", "years at company (default 2)")
	f.StringVar(&raw.Overtime, "overtime", "no", `"yes" if the employee frequently works overtime`)
	f.StringVar(&raw.Age, "age", "", "employee age")
	f.StringVar(&raw.Department, "department", "", "department")
	f.StringVar(&raw.MonthlySalary, "salary", "", "monthly salary")
	f.StringVar(&raw.PerformanceRating, "performance", "", "performance rating 1-5")
	f.Uint64Var(&seed, "seed", 0, "seed for the probability jitter (0 = random)")
	f.IntVar(&workers, "workers", 4, "concurrent assessments for --input")
	f.StringVarP(&input, "input", "i", "", "assess every row of a .csv, .json or .yaml attribute file")
	f.StringVarP(&format, "format", "o", "table", "output format: table, json or csv")

	return cmd
}

func (a *app) assessFile(ctx context.Context, assessor *assess.Assessor, path string, workers int) (model.AssessmentReport, error) {
	raws, err := assess.LoadAttributes(path)
	if err != nil {
		return model.AssessmentReport{}, err
	}
	a.logger.Info("loaded attributes", zap.String("path", path), zap.Int("rows", len(raws)))

	inputs := make([]model.EmployeeAttributes, len(raws))
	for i, raw := range raws {
		inputs[i] = assess.ParseAttributes(raw)
	}

	results, err := assessor.AssessAll(ctx, inputs, workers)
	if err != nil {
		return model.AssessmentReport{}, fmt.Errorf("assess %s: %w", path, err)
	}

	summary := assess.Summarize(results)
	a.logger.Info("assessed batch",
		zap.Int("total", summary.Total),
		zap.Int("high", summary.ByTier[model.RiskHigh]),
		zap.Int("workers", workers),
	)

	report := model.NewAssessmentReport(results)
	report.Summary = &summary
	return report, nil
}

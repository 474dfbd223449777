package assess

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/marek-kar/attrisk/pkg/model"
)

// AssessAll assesses every input concurrently with at most workers in flight.
// Result i always belongs to input i.
func (a *Assessor) AssessAll(ctx context.Context, inputs []model.EmployeeAttributes, workers int) ([]model.RiskAssessment, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]model.RiskAssessment, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range inputs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.Assess(inputs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize counts tiers and factor prevalence across a batch. Factors appear
// in first-seen order; the no-factor sentinel is not counted.
func Summarize(assessments []model.RiskAssessment) model.BatchSummary {
	summary := model.BatchSummary{
		Total:   len(assessments),
		ByTier:  make(map[model.RiskLevel]int),
		Factors: []model.FactorCount{},
	}
	for _, lvl := range model.RiskLevels {
		summary.ByTier[lvl] = 0
	}

	index := make(map[string]int)
	for _, a := range assessments {
		summary.ByTier[a.Tier]++
		for _, f := range a.Factors {
			if f == model.NoFactorsSentinel {
				continue
			}
			i, ok := index[f]
			if !ok {
				i = len(summary.Factors)
				index[f] = i
				summary.Factors = append(summary.Factors, model.FactorCount{Factor: f})
			}
			summary.Factors[i].Count++
		}
	}
	return summary
}

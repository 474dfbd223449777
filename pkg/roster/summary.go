package roster

import (
	"math"

	"github.com/marek-kar/attrisk/pkg/model"
)

// Summarize computes headline metrics. At-risk means a stored high risk level.
func Summarize(roster []model.EmployeeRecord) model.RosterSummary {
	s := model.RosterSummary{
		SchemaVersion: model.SchemaVersion,
		Total:         len(roster),
		ByRisk:        make(map[model.RiskLevel]int),
		ByDepartment:  make(map[model.Department]int),
	}
	for _, lvl := range model.RiskLevels {
		s.ByRisk[lvl] = 0
	}

	satisfaction := 0
	for _, rec := range roster {
		s.ByRisk[rec.RiskLevel]++
		s.ByDepartment[rec.Department]++
		satisfaction += rec.SatisfactionRating
	}
	s.AtRisk = s.ByRisk[model.RiskHigh]

	if s.Total > 0 {
		s.AtRiskRate = round1(float64(s.AtRisk) / float64(s.Total) * 100)
		s.AverageSatisfaction = round1(float64(satisfaction) / float64(s.Total))
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

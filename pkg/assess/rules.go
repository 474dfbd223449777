package assess

import "github.com/marek-kar/attrisk/pkg/model"

const (
	lowRatingThreshold = 2
	lowTenureYears     = 2
)

type LowSatisfactionRule struct{}

func (r *LowSatisfactionRule) Name() string { return "low-job-satisfaction" }

func (r *LowSatisfactionRule) Evaluate(attrs model.EmployeeAttributes) (Hit, bool) {
	if attrs.JobSatisfaction > lowRatingThreshold {
		return Hit{}, false
	}
	return Hit{
		Weight:         30,
		Factor:         "Low job satisfaction",
		Recommendation: "Schedule career development discussion",
	}, true
}

type WorkLifeBalanceRule struct{}

func (r *WorkLifeBalanceRule) Name() string { return "poor-work-life-balance" }

func (r *WorkLifeBalanceRule) Evaluate(attrs model.EmployeeAttributes) (Hit, bool) {
	if attrs.WorkLifeBalance > lowRatingThreshold {
		return Hit{}, false
	}
	return Hit{
		Weight:         25,
		Factor:         "Poor work-life balance",
		Recommendation: "Consider flexible work arrangements",
	}, true
}

type TenureRule struct{}

func (r *TenureRule) Name() string { return "low-tenure" }

func (r *TenureRule) Evaluate(attrs model.EmployeeAttributes) (Hit, bool) {
	if attrs.YearsAtCompany >= lowTenureYears {
		return Hit{}, false
	}
	return Hit{
		Weight:         20,
		Factor:         "Low tenure",
		Recommendation: "Implement mentorship program",
	}, true
}

type OvertimeRule struct{}

func (r *OvertimeRule) Name() string { return "frequent-overtime" }

func (r *OvertimeRule) Evaluate(attrs model.EmployeeAttributes) (Hit, bool) {
	if !attrs.OvertimeFrequent {
		return Hit{}, false
	}
	return Hit{
		Weight:         15,
		Factor:         "Frequent overtime",
		Recommendation: "Review workload distribution",
	}, true
}

// DefaultRules returns the scoring table in evaluation order. Factor and
// recommendation order in an assessment follows this order.
func DefaultRules() []Rule {
	return []Rule{
		&LowSatisfactionRule{},
		&WorkLifeBalanceRule{},
		&TenureRule{},
		&OvertimeRule{},
	}
}

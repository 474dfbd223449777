package model

import (
	"github.com/shopspring/decimal"
)

const (
	NoFactorsSentinel        = "No significant risk factors identified"
	NoRecommendationSentinel = "Continue current engagement practices"
)

// RawAttributes holds attribute values exactly as the caller collected them,
// before lenient parsing.
type RawAttributes struct {
	Age               string `json:"age" yaml:"age"`
	Department        string `json:"department" yaml:"department"`
	JobSatisfaction   string `json:"jobSatisfaction" yaml:"jobSatisfaction"`
	WorkLifeBalance   string `json:"workLifeBalance" yaml:"workLifeBalance"`
	YearsAtCompany    string `json:"yearsAtCompany" yaml:"yearsAtCompany"`
	MonthlySalary     string `json:"monthlySalary" yaml:"monthlySalary"`
	Overtime          string `json:"overtime" yaml:"overtime"`
	PerformanceRating string `json:"performanceRating" yaml:"performanceRating"`
}

// EmployeeAttributes is the parsed input to the assessor. Age, MonthlySalary
// and PerformanceRating are carried but not scored.
type EmployeeAttributes struct {
	Age               int             `json:"age,omitempty"`
	Department        Department      `json:"department,omitempty"`
	JobSatisfaction   int             `json:"jobSatisfaction"`
	WorkLifeBalance   int             `json:"workLifeBalance"`
	YearsAtCompany    int             `json:"yearsAtCompany"`
	MonthlySalary     decimal.Decimal `json:"monthlySalary"`
	OvertimeFrequent  bool            `json:"overtimeFrequent"`
	PerformanceRating int             `json:"performanceRating"`
}

type RiskAssessment struct {
	ID              string             `json:"id"`
	Input           EmployeeAttributes `json:"input"`
	RawScore        int                `json:"rawScore"`
	Probability     float64            `json:"probability"`
	Tier            RiskLevel          `json:"tier"`
	Factors         []string           `json:"factors"`
	Recommendations []string           `json:"recommendations"`
}

type AssessmentReport struct {
	SchemaVersion string           `json:"schemaVersion"`
	Assessments   []RiskAssessment `json:"assessments"`
	Summary       *BatchSummary    `json:"summary,omitempty"`
}

func NewAssessmentReport(assessments []RiskAssessment) AssessmentReport {
	return AssessmentReport{
		SchemaVersion: SchemaVersion,
		Assessments:   assessments,
	}
}

// FactorCount is how many assessments in a batch carried a factor.
type FactorCount struct {
	Factor string `json:"factor"`
	Count  int    `json:"count"`
}

type BatchSummary struct {
	Total   int               `json:"total"`
	ByTier  map[RiskLevel]int `json:"byTier"`
	Factors []FactorCount     `json:"factors"`
}

package assess

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/marek-kar/attrisk/pkg/model"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"5", 5},
		{" 2 ", 2},
		{"4.7", 4},
		{"3 - Medium", 3},
		{"", DefaultRating},
		{"abc", DefaultRating},
		{"0", DefaultRating},
		{"-4", 1},
		{"9", 5},
		{"99999999999999999999999", 5},
		{"-99999999999999999999", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRating(tt.in))
		})
	}
}

func TestParseYears(t *testing.T) {
	assert.Equal(t, DefaultYears, ParseYears(""))
	assert.Equal(t, DefaultYears, ParseYears("n/a"))
	assert.Equal(t, 0, ParseYears("0"))
	assert.Equal(t, 0, ParseYears("-3"))
	assert.Equal(t, 1, ParseYears("1.8"))
	assert.Equal(t, 12, ParseYears("12"))
	assert.Equal(t, 0, ParseYears("-99999999999999999999"))
}

func TestParseAttributes_OverflowClamps(t *testing.T) {
	got := ParseAttributes(model.RawAttributes{
		JobSatisfaction: "-99999999999999999999",
		YearsAtCompany:  "-99999999999999999999",
	})
	assert.Equal(t, 1, got.JobSatisfaction)
	assert.Equal(t, 0, got.YearsAtCompany)

	res := DefaultAssessor(fixedSource(0)).Assess(got)
	assert.Equal(t, 50, res.RawScore)
	assert.Equal(t, model.RiskHigh, res.Tier)
}

func TestParseAgeAndSalary(t *testing.T) {
	assert.Equal(t, 0, ParseAge(""))
	assert.Equal(t, 0, ParseAge("-1"))
	assert.Equal(t, 34, ParseAge("34"))

	assert.True(t, ParseSalary("5000.50").Equal(decimal.RequireFromString("5000.50")))
	assert.True(t, ParseSalary("").IsZero())
	assert.True(t, ParseSalary("lots").IsZero())
	assert.True(t, ParseSalary("-100").IsZero())
}

func TestParseOvertime(t *testing.T) {
	assert.True(t, ParseOvertime("yes"))
	assert.False(t, ParseOvertime("Yes"))
	assert.False(t, ParseOvertime("no"))
	assert.False(t, ParseOvertime(""))
	assert.False(t, ParseOvertime("true"))
}

func TestParseAttributes_Defaults(t *testing.T) {
	got := ParseAttributes(model.RawAttributes{})
	assert.Equal(t, DefaultRating, got.JobSatisfaction)
	assert.Equal(t, DefaultRating, got.WorkLifeBalance)
	assert.Equal(t, DefaultRating, got.PerformanceRating)
	assert.Equal(t, DefaultYears, got.YearsAtCompany)
	assert.False(t, got.OvertimeFrequent)
	assert.Equal(t, model.Department(""), got.Department)

	// Defaults alone never trigger a rule.
	a := DefaultAssessor(fixedSource(0))
	assert.Equal(t, 0, a.Assess(got).RawScore)
}

func TestParseAttributes_FormValues(t *testing.T) {
	got := ParseAttributes(model.RawAttributes{
		Age:               "29",
		Department:        "hr",
		JobSatisfaction:   "2",
		WorkLifeBalance:   "1",
		YearsAtCompany:    "1",
		MonthlySalary:     "4200",
		Overtime:          "yes",
		PerformanceRating: "4",
	})
	assert.Equal(t, 29, got.Age)
	assert.Equal(t, model.DepartmentHR, got.Department)
	assert.Equal(t, 2, got.JobSatisfaction)
	assert.Equal(t, 1, got.WorkLifeBalance)
	assert.Equal(t, 1, got.YearsAtCompany)
	assert.True(t, got.MonthlySalary.Equal(decimal.NewFromInt(4200)))
	assert.True(t, got.OvertimeFrequent)
	assert.Equal(t, 4, got.PerformanceRating)
}

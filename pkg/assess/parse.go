package assess

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/marek-kar/attrisk/pkg/model"
)

const (
	DefaultRating = 3
	DefaultYears  = 2

	minRating = 1
	maxRating = 5

	overtimeSentinel = "yes"
)

// ParseAttributes coerces raw form values into attributes. It never fails:
// every field falls back to its documented default.
func ParseAttributes(raw model.RawAttributes) model.EmployeeAttributes {
	return model.EmployeeAttributes{
		Age:               ParseAge(raw.Age),
		Department:        ParseDepartment(raw.Department),
		JobSatisfaction:   ParseRating(raw.JobSatisfaction),
		WorkLifeBalance:   ParseRating(raw.WorkLifeBalance),
		YearsAtCompany:    ParseYears(raw.YearsAtCompany),
		MonthlySalary:     ParseSalary(raw.MonthlySalary),
		OvertimeFrequent:  ParseOvertime(raw.Overtime),
		PerformanceRating: ParseRating(raw.PerformanceRating),
	}
}

// ParseRating reads a 1-5 rating. Empty, unparseable and zero values become
// DefaultRating; anything else is clamped into range.
func ParseRating(s string) int {
	n, ok := leadingInt(s)
	if !ok || n == 0 {
		return DefaultRating
	}
	if n < minRating {
		return minRating
	}
	if n > maxRating {
		return maxRating
	}
	return n
}

// ParseYears reads tenure in whole years. Empty or unparseable values become
// DefaultYears, negatives become 0. Unlike ParseRating, "0" is a real value.
func ParseYears(s string) int {
	n, ok := leadingInt(s)
	if !ok {
		return DefaultYears
	}
	if n < 0 {
		return 0
	}
	return n
}

// ParseAge returns 0 (unset) for anything that is not a positive integer.
func ParseAge(s string) int {
	n, ok := leadingInt(s)
	if !ok || n < 0 {
		return 0
	}
	return n
}

func ParseSalary(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func ParseOvertime(s string) bool {
	return s == overtimeSentinel
}

// ParseDepartment returns the zero Department for unknown input; scoring does
// not depend on it.
func ParseDepartment(s string) model.Department {
	d, err := model.ParseDepartment(s)
	if err != nil {
		return ""
	}
	return d
}

// leadingInt parses an optional sign followed by the leading run of digits,
// ignoring whatever follows ("4.5" -> 4, "3 years" -> 3). Values outside the
// int range saturate so callers can clamp them.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

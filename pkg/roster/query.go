package roster

import (
	"fmt"
	"strings"

	"github.com/marek-kar/attrisk/pkg/model"
)

// All disables a facet when passed to ParseCriteria.
const All = "all"

// Criteria selects roster records. A zero Department or Risk matches every
// record, as does an empty Search.
type Criteria struct {
	Search     string
	Department model.Department
	Risk       model.RiskLevel
}

// ParseCriteria builds Criteria from user input, mapping "all" and "" to the
// disabled facet.
func ParseCriteria(search, department, risk string) (Criteria, error) {
	c := Criteria{Search: search}

	if !isAll(department) {
		d, err := model.ParseDepartment(department)
		if err != nil {
			return Criteria{}, fmt.Errorf("department filter: %w", err)
		}
		c.Department = d
	}
	if !isAll(risk) {
		r, err := model.ParseRiskLevel(risk)
		if err != nil {
			return Criteria{}, fmt.Errorf("risk filter: %w", err)
		}
		c.Risk = r
	}
	return c, nil
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, All)
}

type Result struct {
	Total   int
	Records []model.EmployeeRecord
}

func (r Result) NoMatches() bool {
	return len(r.Records) == 0
}

func (r Result) View() model.RosterView {
	return model.NewRosterView(r.Total, r.Records)
}

// Query returns the records matching every facet of c, in roster order. The
// roster is not modified.
func Query(roster []model.EmployeeRecord, c Criteria) Result {
	needle := strings.ToLower(c.Search)
	matched := make([]model.EmployeeRecord, 0, len(roster))
	for _, rec := range roster {
		if matchesSearch(rec, needle) && matchesDepartment(rec, c.Department) && matchesRisk(rec, c.Risk) {
			matched = append(matched, rec)
		}
	}
	return Result{Total: len(roster), Records: matched}
}

func matchesSearch(rec model.EmployeeRecord, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Name), needle) ||
		strings.Contains(strings.ToLower(rec.Role), needle)
}

func matchesDepartment(rec model.EmployeeRecord, d model.Department) bool {
	return d == "" || rec.Department == d
}

func matchesRisk(rec model.EmployeeRecord, r model.RiskLevel) bool {
	return r == "" || rec.RiskLevel == r
}

package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const SchemaVersion = "v1"

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentEngineering,
	DepartmentSales,
	DepartmentMarketing,
	DepartmentHR,
	DepartmentFinance,
}

// ParseDepartment accepts the canonical names case-insensitively, plus
// "human resources" as an alias for HR.
func ParseDepartment(s string) (Department, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "engineering":
		return DepartmentEngineering, nil
	case "sales":
		return DepartmentSales, nil
	case "marketing":
		return DepartmentMarketing, nil
	case "hr", "human resources":
		return DepartmentHR, nil
	case "finance":
		return DepartmentFinance, nil
	default:
		return "", fmt.Errorf("unknown department %q", s)
	}
}

func (d Department) Valid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

var RiskLevels = []RiskLevel{RiskHigh, RiskMedium, RiskLow}

func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("unknown risk level %q", s)
	}
}

// TierForScore classifies a raw rule score.
func TierForScore(score int) RiskLevel {
	switch {
	case score >= 50:
		return RiskHigh
	case score >= 25:
		return RiskMedium
	default:
		return RiskLow
	}
}

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Label is the badge text shown next to a record.
func (r RiskLevel) Label() string {
	switch r {
	case RiskHigh:
		return "High Risk"
	case RiskMedium:
		return "Medium Risk"
	case RiskLow:
		return "Low Risk"
	default:
		return "Unknown"
	}
}

const DateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// EmployeeRecord is one roster entry. RiskLevel is stored with the record and
// is not recomputed from attributes.
type EmployeeRecord struct {
	ID                 int        `json:"id" yaml:"id"`
	Name               string     `json:"name" yaml:"name"`
	Department         Department `json:"department" yaml:"department"`
	Role               string     `json:"role" yaml:"role"`
	Tenure             string     `json:"tenure" yaml:"tenure"`
	SatisfactionRating int        `json:"satisfaction" yaml:"satisfaction"`
	RiskLevel          RiskLevel  `json:"riskLevel" yaml:"riskLevel"`
	LastReviewDate     Date       `json:"lastReview" yaml:"lastReview"`
}

// RosterView is the rendered result of a roster query.
type RosterView struct {
	SchemaVersion string           `json:"schemaVersion"`
	Total         int              `json:"total"`
	Matched       int              `json:"matched"`
	Records       []EmployeeRecord `json:"records"`
}

func NewRosterView(total int, records []EmployeeRecord) RosterView {
	if records == nil {
		records = []EmployeeRecord{}
	}
	return RosterView{
		SchemaVersion: SchemaVersion,
		Total:         total,
		Matched:       len(records),
		Records:       records,
	}
}

func (v RosterView) NoMatches() bool {
	return v.Matched == 0
}

// RosterSummary aggregates a roster into headline metrics.
type RosterSummary struct {
	SchemaVersion       string             `json:"schemaVersion"`
	Total               int                `json:"total"`
	ByRisk              map[RiskLevel]int  `json:"byRisk"`
	ByDepartment        map[Department]int `json:"byDepartment"`
	AtRisk              int                `json:"atRisk"`
	AtRiskRate          float64            `json:"atRiskRate"`
	AverageSatisfaction float64            `json:"averageSatisfaction"`
}

package model

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func TestEmployeeRecordJSONRoundTrip(t *testing.T) {
	rec := EmployeeRecord{
		ID:                 2,
		Name:               "Michael Chen",
		Department:         DepartmentSales,
		Role:               "Account Manager",
		Tenure:             "1.8 years",
		SatisfactionRating: 2,
		RiskLevel:          RiskHigh,
		LastReviewDate:     NewDate(2024, time.January, 10),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !containsStr(string(data), `"lastReview":"2024-01-10"`) {
		t.Errorf("date not encoded as YYYY-MM-DD: %s", data)
	}

	var decoded EmployeeRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Name != rec.Name {
		t.Errorf("Name mismatch: got %q, want %q", decoded.Name, rec.Name)
	}
	if decoded.RiskLevel != RiskHigh {
		t.Errorf("RiskLevel mismatch: got %q, want %q", decoded.RiskLevel, RiskHigh)
	}
	if !decoded.LastReviewDate.Equal(rec.LastReviewDate.Time) {
		t.Errorf("LastReviewDate mismatch: got %v, want %v", decoded.LastReviewDate, rec.LastReviewDate)
	}
}

func TestDateYAML(t *testing.T) {
	var rec EmployeeRecord
	src := "id: 1\nname: Sarah Johnson\nlastReview: 2024-01-15\n"
	if err := yaml.Unmarshal([]byte(src), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := rec.LastReviewDate.String(); got != "2024-01-15" {
		t.Errorf("date: got %q, want %q", got, "2024-01-15")
	}
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15/01/2024"`), &d); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if err := json.Unmarshal([]byte(`20240115`), &d); err == nil {
		t.Error("expected error for numeric date")
	}
}

func TestParseDepartment(t *testing.T) {
	tests := []struct {
		in   string
		want Department
		err  bool
	}{
		{"Engineering", DepartmentEngineering, false},
		{"engineering", DepartmentEngineering, false},
		{" SALES ", DepartmentSales, false},
		{"hr", DepartmentHR, false},
		{"Human Resources", DepartmentHR, false},
		{"finance", DepartmentFinance, false},
		{"marketing", DepartmentMarketing, false},
		{"Legal", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDepartment(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("ParseDepartment(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDepartment(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDepartment(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTierForScore(t *testing.T) {
	for score := 0; score <= 90; score++ {
		got := TierForScore(score)
		var want RiskLevel
		switch {
		case score >= 50:
			want = RiskHigh
		case score >= 25:
			want = RiskMedium
		default:
			want = RiskLow
		}
		if got != want {
			t.Errorf("score %d: got %q, want %q", score, got, want)
		}
	}
}

func TestRiskLevelLabel(t *testing.T) {
	if RiskHigh.Label() != "High Risk" {
		t.Errorf("high label: got %q", RiskHigh.Label())
	}
	if RiskLevel("critical").Label() != "Unknown" {
		t.Errorf("unknown label: got %q", RiskLevel("critical").Label())
	}
	if RiskLevel("critical").Valid() {
		t.Error("critical should not be a valid risk level")
	}
	if _, err := ParseRiskLevel("critical"); err == nil {
		t.Error("expected error for unknown risk level")
	}
}

func TestNewRosterView(t *testing.T) {
	v := NewRosterView(6, nil)
	if v.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion: got %q, want %q", v.SchemaVersion, SchemaVersion)
	}
	if !v.NoMatches() {
		t.Error("empty view should report no matches")
	}
	if v.Records == nil {
		t.Error("records should be an empty slice, not nil")
	}
}

func containsStr(s, sub string) bool {
	for i := 0; i <= len(s)-len(sub); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

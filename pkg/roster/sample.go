package roster

import (
	"time"

	"github.com/marek-kar/attrisk/pkg/model"
)

// Sample returns the built-in demo roster. Each call returns a fresh slice.
func Sample() []model.EmployeeRecord {
	return []model.EmployeeRecord{
		{
			ID: 1, Name: "Sarah Johnson", Department: model.DepartmentEngineering, Role: "Senior Developer",
			Tenure: "3.2 years", SatisfactionRating: 4, RiskLevel: model.RiskLow,
			LastReviewDate: model.NewDate(2024, time.January, 15),
		},
		{
			ID: 2, Name: "Michael Chen", Department: model.DepartmentSales, Role: "Account Manager",
			Tenure: "1.8 years", SatisfactionRating: 2, RiskLevel: model.RiskHigh,
			LastReviewDate: model.NewDate(2024, time.January, 10),
		},
		{
			ID: 3, Name: "Emily Rodriguez", Department: model.DepartmentMarketing, Role: "Marketing Specialist",
			Tenure: "2.5 years", SatisfactionRating: 3, RiskLevel: model.RiskMedium,
			LastReviewDate: model.NewDate(2024, time.January, 20),
		},
		{
			ID: 4, Name: "David Kim", Department: model.DepartmentEngineering, Role: "Tech Lead",
			Tenure: "4.1 years", SatisfactionRating: 5, RiskLevel: model.RiskLow,
			LastReviewDate: model.NewDate(2024, time.January, 12),
		},
		{
			ID: 5, Name: "Lisa Thompson", Department: model.DepartmentHR, Role: "HR Specialist",
			Tenure: "0.9 years", SatisfactionRating: 2, RiskLevel: model.RiskHigh,
			LastReviewDate: model.NewDate(2024, time.January, 18),
		},
		{
			ID: 6, Name: "James Wilson", Department: model.DepartmentFinance, Role: "Financial Analyst",
			Tenure: "2.8 years", SatisfactionRating: 4, RiskLevel: model.RiskLow,
			LastReviewDate: model.NewDate(2024, time.January, 14),
		},
	}
}

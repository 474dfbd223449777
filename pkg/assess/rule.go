package assess

import "github.com/marek-kar/attrisk/pkg/model"

// Hit is what a triggered rule contributes to an assessment.
type Hit struct {
	Weight         int
	Factor         string
	Recommendation string
}

type Rule interface {
	Name() string
	Evaluate(attrs model.EmployeeAttributes) (Hit, bool)
}

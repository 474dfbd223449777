package assess

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/marek-kar/attrisk/pkg/model"
)

const (
	maxJitter      = 20.0
	maxProbability = 95.0
)

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// NewSeededSource returns a reproducible Source for tests and --seed runs.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Assessor applies the rule table to employee attributes. Probability carries
// jitter drawn from the Source, so it is not reproducible unless the Source
// is seeded; RawScore and Tier always are.
type Assessor struct {
	rulesMu sync.RWMutex
	rules   []Rule

	mu  sync.Mutex
	src Source

	newID func() string
}

func NewAssessor(src Source, rules ...Rule) *Assessor {
	if src == nil {
		src = globalSource{}
	}
	return &Assessor{
		rules: rules,
		src:   src,
		newID: uuid.NewString,
	}
}

func DefaultAssessor(src Source) *Assessor {
	return NewAssessor(src, DefaultRules()...)
}

// Register appends r after the existing rules. It is safe to call while other
// goroutines assess; assessments already running keep the old rule set.
func (a *Assessor) Register(r Rule) {
	a.rulesMu.Lock()
	defer a.rulesMu.Unlock()
	a.rules = append(a.rules, r)
}

// Rules returns a copy of the registered rules in evaluation order.
func (a *Assessor) Rules() []Rule {
	a.rulesMu.RLock()
	defer a.rulesMu.RUnlock()
	return append([]Rule(nil), a.rules...)
}

func (a *Assessor) Assess(attrs model.EmployeeAttributes) model.RiskAssessment {
	rules := a.Rules()
	score := 0
	factors := make([]string, 0, len(rules))
	recommendations := make([]string, 0, len(rules))

	for _, r := range rules {
		hit, ok := r.Evaluate(attrs)
		if !ok {
			continue
		}
		score += hit.Weight
		factors = append(factors, hit.Factor)
		recommendations = append(recommendations, hit.Recommendation)
	}

	if len(factors) == 0 {
		factors = append(factors, model.NoFactorsSentinel)
		recommendations = append(recommendations, model.NoRecommendationSentinel)
	}

	return model.RiskAssessment{
		ID:              a.newID(),
		Input:           attrs,
		RawScore:        score,
		Probability:     probability(score, a.draw()),
		Tier:            model.TierForScore(score),
		Factors:         factors,
		Recommendations: recommendations,
	}
}

func (a *Assessor) draw() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.src.Float64()
}

func probability(score int, u float64) float64 {
	p := float64(score) + u*maxJitter
	if p > maxProbability {
		return maxProbability
	}
	return p
}

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/marek-kar/attrisk/pkg/model"
)

const namespace = "attrisk"

// Recorder counts assessments and roster queries on its own registry so a
// CLI run can flush them to a node-exporter textfile.
type Recorder struct {
	registry      *prometheus.Registry
	assessments   *prometheus.CounterVec
	factors       *prometheus.CounterVec
	rosterQueries prometheus.Counter
	rosterMatches prometheus.Counter
	rosterAtRisk  prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Risk assessments produced, by tier.",
		}, []string{"tier"}),
		factors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_factors_total",
			Help:      "Risk factors identified across assessments.",
		}, []string{"factor"}),
		rosterQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_queries_total",
			Help:      "Roster queries executed.",
		}),
		rosterMatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_matches_total",
			Help:      "Records returned by roster queries.",
		}),
		rosterAtRisk: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "roster_at_risk",
			Help:      "High risk employees in the last summarized roster.",
		}),
	}
	r.registry.MustRegister(r.assessments, r.factors, r.rosterQueries, r.rosterMatches, r.rosterAtRisk)
	for _, lvl := range model.RiskLevels {
		r.assessments.WithLabelValues(string(lvl))
	}
	return r
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) ObserveAssessments(assessments ...model.RiskAssessment) {
	for _, a := range assessments {
		r.assessments.WithLabelValues(string(a.Tier)).Inc()
		for _, f := range a.Factors {
			if f == model.NoFactorsSentinel {
				continue
			}
			r.factors.WithLabelValues(f).Inc()
		}
	}
}

func (r *Recorder) ObserveQuery(view model.RosterView) {
	r.rosterQueries.Inc()
	r.rosterMatches.Add(float64(view.Matched))
}

func (r *Recorder) ObserveSummary(s model.RosterSummary) {
	r.rosterAtRisk.Set(float64(s.AtRisk))
}

// WriteFile writes the registry in text exposition format, replacing path
// atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}

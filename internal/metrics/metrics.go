// Package metrics records planner counters in a private Prometheus registry.
//
// A nil *Recorder is valid and records nothing, so callers never need to
// check whether metrics are enabled.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns the planner's metric families.
type Recorder struct {
	registry *prometheus.Registry

	tableBuildSeconds prometheus.Gauge
	tableFeasible     prometheus.Gauge
	statesExpanded    prometheus.Counter
	candidates        prometheus.Counter
	pruned            prometheus.Counter
	levelSize         prometheus.Histogram
	planSteps         prometheus.Gauge
	searches          *prometheus.CounterVec
}

// NewRecorder registers every planner metric in a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		tableBuildSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Name: "planner_table_build_seconds",
			Help: "Wall time spent building the minimum-step table",
		}),
		tableFeasible: factory.NewGauge(prometheus.GaugeOpts{
			Name: "planner_table_feasible_entries",
			Help: "Finite entries in the minimum-step table",
		}),
		statesExpanded: factory.NewCounter(prometheus.CounterOpts{
			Name: "planner_states_expanded_total",
			Help: "Beam states expanded across all waypoints",
		}),
		candidates: factory.NewCounter(prometheus.CounterOpts{
			Name: "planner_candidates_total",
			Help: "Candidate states generated before pruning",
		}),
		pruned: factory.NewCounter(prometheus.CounterOpts{
			Name: "planner_candidates_pruned_total",
			Help: "Candidate states dropped as duplicates or beyond the beam width",
		}),
		levelSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_level_size",
			Help:    "Beam states kept per waypoint",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512
		}),
		planSteps: factory.NewGauge(prometheus.GaugeOpts{
			Name: "planner_plan_steps",
			Help: "Total steps of the last plan found",
		}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_searches_total",
			Help: "Route searches by result",
		}, []string{"result"}),
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveTableBuild records how long the step table took and how many entries
// it filled.
func (r *Recorder) ObserveTableBuild(elapsed time.Duration, feasible int) {
	if r == nil {
		return
	}
	r.tableBuildSeconds.Set(elapsed.Seconds())
	r.tableFeasible.Set(float64(feasible))
}

// ObserveLevel records one finalized beam level.
func (r *Recorder) ObserveLevel(expanded, generated, kept int) {
	if r == nil {
		return
	}
	r.statesExpanded.Add(float64(expanded))
	r.candidates.Add(float64(generated))
	r.pruned.Add(float64(generated - kept))
	r.levelSize.Observe(float64(kept))
}

// ObserveSearch records the outcome of one route search.
func (r *Recorder) ObserveSearch(steps int, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.searches.WithLabelValues("no_plan").Inc()
		return
	}
	r.searches.WithLabelValues("ok").Inc()
	r.planSteps.Set(float64(steps))
}

// WriteTextfile writes every metric in the text exposition format, for
// node_exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

package bfs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "lagraph"
	metricsSubsystem = "bfs"
)

// Metrics holds the Prometheus collectors updated by Run. A nil *Metrics is
// a no-op.
type Metrics struct {
	TraversalsTotal *prometheus.CounterVec
	LevelsTotal     *prometheus.CounterVec
	SwitchesTotal   prometheus.Counter
	VisitedNodes    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is what tests usually want.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		TraversalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "traversals_total",
				Help:      "Completed traversals by tracking mode",
			},
			[]string{"mode"},
		),
		LevelsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "levels_total",
				Help:      "Propagation steps by direction",
			},
			[]string{"direction"},
		),
		SwitchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "direction_switches_total",
				Help:      "Push/pull direction changes",
			},
		),
		VisitedNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "visited_nodes",
				Help:      "Nodes visited per traversal",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.TraversalsTotal, m.LevelsTotal, m.SwitchesTotal, m.VisitedNodes} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("bfs: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observe(mode string, s Stats) {
	if m == nil {
		return
	}
	m.TraversalsTotal.WithLabelValues(mode).Inc()
	m.LevelsTotal.WithLabelValues(dirPush).Add(float64(s.PushLevels))
	m.LevelsTotal.WithLabelValues(dirPull).Add(float64(s.PullLevels))
	m.SwitchesTotal.Add(float64(s.Switches))
	m.VisitedNodes.Observe(float64(s.Visited))
}

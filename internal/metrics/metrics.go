// Package metrics exposes Prometheus collectors for store queries and
// hydration drops.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const namespace = "dicers"

type Metrics struct {
	queries          *prometheus.CounterVec
	queryDuration    *prometheus.HistogramVec
	droppedRelations *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "queries_total",
			Help:      "Database statements by table, operation and result.",
		}, []string{"table", "operation", "result"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Database statement latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"table", "operation"}),
		droppedRelations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hydrator",
			Name:      "dropped_relations_total",
			Help:      "Optional relations left empty because they could not be resolved.",
		}, []string{"relation"}),
	}
	reg.MustRegister(m.queries, m.queryDuration, m.droppedRelations)
	return m
}

// DroppedRelation counts one unresolved optional relation.
func (m *Metrics) DroppedRelation(relation string) {
	m.droppedRelations.WithLabelValues(relation).Inc()
}

func (m *Metrics) observe(table, operation string, started time.Time, err error) {
	result := "ok"
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		result = "error"
	}
	if table == "" {
		table = "unknown"
	}
	m.queries.WithLabelValues(table, operation, result).Inc()
	if !started.IsZero() {
		m.queryDuration.WithLabelValues(table, operation).Observe(time.Since(started).Seconds())
	}
}

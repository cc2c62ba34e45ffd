// Package promexport adapts a metrics.Registry to prometheus.Collector,
// for hosts that already run a Prometheus exporter and want the engine's
// counters to show up alongside their own.
package promexport

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/battlekit/engine/metrics"
)

var (
	systemDesc = prometheus.NewDesc(
		"battlekit_system_total",
		"Monotonic system counter reported by the battle engine or a rulebook.",
		[]string{"counter"}, nil,
	)
	userDesc = prometheus.NewDesc(
		"battlekit_user_total",
		"Monotonic per-caller counter reported by the battle engine or a rulebook. "+
			"The user label carries whatever key the rulebook chose, by convention \"<counter>:<id>\".",
		[]string{"user"}, nil,
	)
)

// Collector exposes a *metrics.Registry's counters as Prometheus metrics.
// It reads a live snapshot on every Collect call, so registering it
// costs nothing when no scrape is in flight.
type Collector struct {
	registry *metrics.Registry
}

// NewCollector wraps registry for Prometheus export.
func NewCollector(registry *metrics.Registry) *Collector {
	return &Collector{registry: registry}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- systemDesc
	ch <- userDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for id, v := range c.registry.SystemSnapshot() {
		ch <- prometheus.MustNewConstMetric(systemDesc, prometheus.CounterValue, float64(v), string(id))
	}
	for id, v := range c.registry.UserSnapshot() {
		ch <- prometheus.MustNewConstMetric(userDesc, prometheus.CounterValue, float64(v), string(id))
	}
}

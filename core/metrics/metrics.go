// Package metrics counts what one scrape run fetched, stored and dropped.
// Counters live in a private registry so a run can be dumped to a
// node_exporter textfile without touching the global registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the counters of one run. A nil *Recorder discards everything.
type Recorder struct {
	registry *prometheus.Registry

	Fetches  *prometheus.CounterVec
	Records  *prometheus.CounterVec
	Dropped  *prometheus.CounterVec
	Overlays *prometheus.CounterVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hyeat_fetches_total",
			Help: "Portal fetches by view (weekly, daily) and outcome (ok, error).",
		}, []string{"view", "outcome"}),
		Records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hyeat_records_total",
			Help: "Menu records written by stage (weekly, daily, breakfast).",
		}, []string{"stage"}),
		Dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hyeat_dropped_units_total",
			Help: "Markup units skipped by reason.",
		}, []string{"reason"}),
		Overlays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hyeat_daily_overlays_total",
			Help: "Daily overlays by kind (general, breakfast) and outcome (applied, skipped).",
		}, []string{"kind", "outcome"}),
	}
	r.registry.MustRegister(r.Fetches, r.Records, r.Dropped, r.Overlays)
	return r
}

// Fetch counts one fetch of view.
func (r *Recorder) Fetch(view string, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.Fetches.WithLabelValues(view, outcome).Inc()
}

// Record counts one record written by stage.
func (r *Recorder) Record(stage string) {
	if r == nil {
		return
	}
	r.Records.WithLabelValues(stage).Inc()
}

// Drop counts one skipped unit.
func (r *Recorder) Drop(reason string) {
	if r == nil {
		return
	}
	r.Dropped.WithLabelValues(reason).Inc()
}

// Overlay counts one daily overlay attempt.
func (r *Recorder) Overlay(kind string, applied bool) {
	if r == nil {
		return
	}
	outcome := "skipped"
	if applied {
		outcome = "applied"
	}
	r.Overlays.WithLabelValues(kind, outcome).Inc()
}

// Gatherer exposes the run registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile dumps the counters in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}

// Package metrics exports hash table occupancy as Prometheus gauges.
//
// A Table is not safe for concurrent use, so the Recorder never reads a
// table itself. The goroutine that owns a table calls Observe with a fresh
// Stats snapshot; scrapes only read the gauges.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/hashtable/pkg/hashtable"
)

const labelTable = "table"

// StatsSource is implemented by *hashtable.Table.
type StatsSource interface {
	Stats() hashtable.Stats
}

// Recorder holds one gauge per Stats field, labeled by table name.
type Recorder struct {
	entries      *prometheus.GaugeVec
	buckets      *prometheus.GaugeVec
	usedBuckets  *prometheus.GaugeVec
	longestChain *prometheus.GaugeVec
	loadFactor   *prometheus.GaugeVec
}

var _ prometheus.Collector = (*Recorder)(nil)

// NewRecorder returns an unregistered Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashtable_entries",
			Help: "Number of stored entries by table",
		}, []string{labelTable}),
		buckets: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashtable_buckets",
			Help: "Number of buckets by table",
		}, []string{labelTable}),
		usedBuckets: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashtable_used_buckets",
			Help: "Number of non-empty buckets by table",
		}, []string{labelTable}),
		longestChain: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashtable_longest_chain",
			Help: "Length of the longest collision chain by table",
		}, []string{labelTable}),
		loadFactor: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashtable_load_factor",
			Help: "Entries per bucket by table",
		}, []string{labelTable}),
	}
}

// Observe sets the gauges for table from s.
func (r *Recorder) Observe(table string, s hashtable.Stats) {
	r.entries.WithLabelValues(table).Set(float64(s.Entries))
	r.buckets.WithLabelValues(table).Set(float64(s.Buckets))
	r.usedBuckets.WithLabelValues(table).Set(float64(s.UsedBuckets))
	r.longestChain.WithLabelValues(table).Set(float64(s.LongestChain))
	r.loadFactor.WithLabelValues(table).Set(s.LoadFactor)
}

// ObserveTable snapshots src and records it under table. It must run on the
// goroutine that owns src.
func (r *Recorder) ObserveTable(table string, src StatsSource) {
	r.Observe(table, src.Stats())
}

// Register adds the Recorder to reg. Registering the same Recorder twice,
// or two Recorders on one registry, fails with
// prometheus.AlreadyRegisteredError.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	if err := reg.Register(r); err != nil {
		return fmt.Errorf("register hashtable metrics: %w", err)
	}
	return nil
}

// Forget drops every gauge for table.
func (r *Recorder) Forget(table string) {
	for _, g := range r.vecs() {
		g.DeleteLabelValues(table)
	}
}

// Describe implements prometheus.Collector.
func (r *Recorder) Describe(ch chan<- *prometheus.Desc) {
	for _, g := range r.vecs() {
		g.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (r *Recorder) Collect(ch chan<- prometheus.Metric) {
	for _, g := range r.vecs() {
		g.Collect(ch)
	}
}

func (r *Recorder) vecs() []*prometheus.GaugeVec {
	return []*prometheus.GaugeVec{r.entries, r.buckets, r.usedBuckets, r.longestChain, r.loadFactor}
}

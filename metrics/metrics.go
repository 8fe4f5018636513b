// SPDX-License-Identifier: MIT

// Package metrics exports graph lifecycle events as Prometheus metrics.
//
// A Collector is a core.Observer: register it on a graph with
// core.WithObserver and on a registry with Register.
package metrics

import (
	"github.com/katalvlaran/geograph/core"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "geograph"

// Collector holds every metric fed by graph notifications.
type Collector struct {
	core.NopObserver

	InsertRuns     *prometheus.CounterVec
	EdgesRequested *prometheus.CounterVec
	EdgesInserted  *prometheus.CounterVec
	InsertDuration *prometheus.HistogramVec
	Edges          prometheus.Gauge
	Nodes          prometheus.Gauge
	InitDuration   prometheus.Histogram
}

// New builds an unregistered Collector.
func New() *Collector {
	return &Collector{
		InsertRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insert_runs_total",
			Help:      "Number of InsertRandomEdges calls completed, per lock policy.",
		}, []string{"policy"}),
		EdgesRequested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_requested_total",
			Help:      "Edges requested after clamping to the maximum, per lock policy.",
		}, []string{"policy"}),
		EdgesInserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_inserted_total",
			Help:      "Edges actually committed, per lock policy.",
		}, []string{"policy"}),
		InsertDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:                      namespace,
			Name:                           "insert_duration_seconds",
			Help:                           "Wall time of InsertRandomEdges calls.",
			Buckets:                        prometheus.ExponentialBuckets(0.0001, 4, 10),
			NativeHistogramBucketFactor:    2,
			NativeHistogramMaxBucketNumber: 25,
		}, []string{"policy"}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Edges present after the latest batch or call.",
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Node count of the latest constructed graph.",
		}),
		InitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "init_duration_seconds",
			Help:      "Wall time of point generation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
}

// Register adds every metric to registry.
func (c *Collector) Register(registry *prometheus.Registry) error {
	for _, m := range []prometheus.Collector{
		c.InsertRuns, c.EdgesRequested, c.EdgesInserted, c.InsertDuration,
		c.Edges, c.Nodes, c.InitDuration,
	} {
		if err := registry.Register(m); err != nil {
			return err
		}
	}

	return nil
}

func (c *Collector) InitEnd(e core.InitEvent) {
	c.Nodes.Set(float64(e.Nodes))
	c.InitDuration.Observe(e.Elapsed.Seconds())
}

func (c *Collector) InsertProgress(e core.ProgressEvent) {
	c.Edges.Set(float64(e.Total))
}

func (c *Collector) InsertEnd(e core.InsertEvent) {
	policy := e.Policy.String()
	c.InsertRuns.WithLabelValues(policy).Inc()
	c.EdgesRequested.WithLabelValues(policy).Add(float64(e.Requested))
	c.EdgesInserted.WithLabelValues(policy).Add(float64(e.Inserted))
	c.InsertDuration.WithLabelValues(policy).Observe(e.Elapsed.Seconds())
	c.Edges.Set(float64(e.Total))
}

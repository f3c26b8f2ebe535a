package vec

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics reported by vectors.
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid. A
// single instance is meant to be shared by many vectors: collectors are created and registered
// once, when the config is built.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the allocations counter.
	Allocations prometheus.CounterOpts
	// Options for the reallocations counter.
	Reallocations prometheus.CounterOpts
	// Options for the releases counter.
	Releases prometheus.CounterOpts
	// Options for the allocated bytes gauge.
	AllocatedBytes prometheus.GaugeOpts
	// Options for the capacity histogram.
	Capacity prometheus.HistogramOpts

	metrics *metrics
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "vec"
		subsystem = ""
	)

	c := PrometheusConfig{
		Namespace: namespace,
		Subsystem: subsystem,
		Allocations: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocations",
			Help:      "Number of fresh backing allocations",
		},
		Reallocations: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reallocations",
			Help:      "Number of times a backing allocation was grown",
		},
		Releases: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "releases",
			Help:      "Number of released backing allocations",
		},
		AllocatedBytes: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocated_bytes",
			Help:      "Number of bytes currently held by backing allocations",
		},
		Capacity: prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Capacity in elements after each allocation or reallocation",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 20),
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	c.metrics = c.newMetrics(registerer)

	return &c
}

func (c *PrometheusConfig) newMetrics(registerer prometheus.Registerer) *metrics {
	m := metrics{
		allocations:    prometheus.NewCounter(c.Allocations),
		reallocations:  prometheus.NewCounter(c.Reallocations),
		releases:       prometheus.NewCounter(c.Releases),
		allocatedBytes: prometheus.NewGauge(c.AllocatedBytes),
		capacity:       prometheus.NewHistogram(c.Capacity),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.allocations,
			m.reallocations,
			m.releases,
			m.allocatedBytes,
			m.capacity,
		)
	}

	return &m
}

type metrics struct {
	allocations    prometheus.Counter
	reallocations  prometheus.Counter
	releases       prometheus.Counter
	allocatedBytes prometheus.Gauge
	capacity       prometheus.Histogram
}

func (m *metrics) allocated(bytes, capacity int) {
	if m == nil {
		return
	}
	m.allocations.Inc()
	m.allocatedBytes.Add(float64(bytes))
	m.capacity.Observe(float64(capacity))
}

func (m *metrics) reallocated(oldBytes, newBytes, capacity int) {
	if m == nil {
		return
	}
	m.reallocations.Inc()
	m.allocatedBytes.Add(float64(newBytes - oldBytes))
	m.capacity.Observe(float64(capacity))
}

func (m *metrics) released(bytes int) {
	if m == nil {
		return
	}
	m.releases.Inc()
	m.allocatedBytes.Sub(float64(bytes))
}

package metrics

import (
	"github.com/javi11/poolkeeper/pkg/resourcepool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "poolkeeper"

type StatsProvider interface {
	Stats() []resourcepool.Stats
}

type poolMetric struct {
	desc  *prometheus.Desc
	value func(resourcepool.Stats) float64
}

// Collector reports the current state of every pool in a registry. Values are read on each scrape.
type Collector struct {
	stats    StatsProvider
	pools    *prometheus.Desc
	gauges   []poolMetric
	counters []poolMetric
}

func NewCollector(stats StatsProvider) *Collector {
	labels := []string{"pool"}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", name), help, labels, nil)
	}

	return &Collector{
		stats: stats,
		pools: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "pools"), "Number of registered pools.", nil, nil),
		gauges: []poolMetric{
			{desc("resources", "Resources owned by the pool."), func(s resourcepool.Stats) float64 { return float64(s.Size) }},
			{desc("idle", "Idle resources."), func(s resourcepool.Stats) float64 { return float64(s.Idle) }},
			{desc("busy", "Resources on loan."), func(s resourcepool.Stats) float64 { return float64(s.Busy) }},
			{desc("waiting", "Callers blocked in acquire."), func(s resourcepool.Stats) float64 { return float64(s.Waiting) }},
			{desc("maximum_size", "Configured maximum size, 0 when unbounded."), func(s resourcepool.Stats) float64 { return float64(s.MaximumSize) }},
		},
		counters: []poolMetric{
			{desc("created_total", "Resources created."), func(s resourcepool.Stats) float64 { return float64(s.Created) }},
			{desc("destroyed_total", "Resources closed or removed."), func(s resourcepool.Stats) float64 { return float64(s.Destroyed) }},
			{desc("acquired_total", "Resources handed out, new or reused."), func(s resourcepool.Stats) float64 { return float64(s.Acquired) }},
			{desc("timeouts_total", "Acquires that gave up waiting."), func(s resourcepool.Stats) float64 { return float64(s.Timeouts) }},
			{desc("factory_failures_total", "Failed resource creations."), func(s resourcepool.Stats) float64 { return float64(s.FactoryFailures) }},
		},
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pools
	for _, g := range c.gauges {
		ch <- g.desc
	}
	for _, m := range c.counters {
		ch <- m.desc
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.stats.Stats()

	ch <- prometheus.MustNewConstMetric(c.pools, prometheus.GaugeValue, float64(len(stats)))

	for _, s := range stats {
		key := s.Key.String()
		for _, g := range c.gauges {
			ch <- prometheus.MustNewConstMetric(g.desc, prometheus.GaugeValue, g.value(s), key)
		}
		for _, m := range c.counters {
			ch <- prometheus.MustNewConstMetric(m.desc, prometheus.CounterValue, m.value(s), key)
		}
	}
}

// NewRegistry returns a prometheus registry with the pool collector and the Go runtime collectors.
func NewRegistry(stats StatsProvider) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewCollector(stats),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Package metrics reports cache events to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/krisalay/ttl-cache/types"
)

const namespace = "ttlcache"

var _ types.Metrics = (*Prometheus)(nil)

// Prometheus implements types.Metrics with one counter per event.
type Prometheus struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	expirations prometheus.Counter
	writes      prometheus.Counter
	deletes     prometheus.Counter
}

// NewPrometheus creates the counters and registers them on reg. Pass a
// distinct subsystem for each cache sharing a registry.
func NewPrometheus(reg prometheus.Registerer, subsystem string) (*Prometheus, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	p := &Prometheus{
		hits:        counter("hits_total", "Total number of lookups that found a live entry"),
		misses:      counter("misses_total", "Total number of lookups that found no live entry"),
		expirations: counter("expirations_total", "Total number of expired entries removed"),
		writes:      counter("writes_total", "Total number of entries written"),
		deletes:     counter("deletes_total", "Total number of explicit deletes"),
	}

	for _, c := range []prometheus.Collector{p.hits, p.misses, p.expirations, p.writes, p.deletes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) Hit()    { p.hits.Inc() }
func (p *Prometheus) Miss()   { p.misses.Inc() }
func (p *Prometheus) Expire() { p.expirations.Inc() }
func (p *Prometheus) Write()  { p.writes.Inc() }
func (p *Prometheus) Delete() { p.deletes.Inc() }

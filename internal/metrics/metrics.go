// Package metrics provides Prometheus metrics for meta decoding.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yacchi/partymeta/codec"
	"github.com/yacchi/partymeta/metakey"
	"github.com/yacchi/partymeta/metastore"
)

// Metrics holds the partymeta collectors.
type Metrics struct {
	DecodeFailuresTotal *prometheus.CounterVec
	MergesTotal         prometheus.Counter
	KeysChangedTotal    prometheus.Counter

	registry *prometheus.Registry
}

// New creates the collectors and registers them on a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		DecodeFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "partymeta_decode_failures_total",
				Help: "Total number of meta values that failed to decode",
			},
			[]string{"key", "tag"},
		),
		MergesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "partymeta_merges_total",
				Help: "Total number of store updates that changed at least one key",
			},
		),
		KeysChangedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "partymeta_keys_changed_total",
				Help: "Total number of keys updated or removed across store updates",
			},
		),
		registry: reg,
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveFailure counts a parse failure. Its signature matches
// partymeta.FailureHandler.
func (m *Metrics) ObserveFailure(err *metakey.ParseError) {
	if err == nil {
		return
	}
	tag := err.Tag
	if tag == codec.TagUnknown {
		tag = err.Key.Tag()
	}
	m.DecodeFailuresTotal.WithLabelValues(string(err.Key), tag.String()).Inc()
}

// ObserveChange counts a store change. Pass it to metastore.Store.Subscribe.
func (m *Metrics) ObserveChange(c metastore.Change) {
	if c.IsEmpty() {
		return
	}
	m.MergesTotal.Inc()
	m.KeysChangedTotal.Add(float64(len(c.Updated) + len(c.Removed)))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

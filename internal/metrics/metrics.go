// Package metrics exposes widget activity as Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/billsplit/internal/calculator"
	"github.com/mmynk/billsplit/internal/widget"
)

var _ widget.Recorder = (*Metrics)(nil)

// Metrics implements widget.Recorder with Prometheus counters.
type Metrics struct {
	registry     *prometheus.Registry
	friendsAdded prometheus.Counter
	settlements  *prometheus.CounterVec
	ignored      *prometheus.CounterVec
}

// New creates the counters and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		friendsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "billsplit",
			Name:      "friends_added_total",
			Help:      "Number of friends added through the add-friend form.",
		}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billsplit",
			Name:      "settlements_total",
			Help:      "Number of bills split, by who paid.",
		}, []string{"payer"}),
		ignored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billsplit",
			Name:      "ignored_submissions_total",
			Help:      "Form submissions dropped because a required field was empty.",
		}, []string{"form"}),
	}
	m.registry.MustRegister(m.friendsAdded, m.settlements, m.ignored)
	return m
}

// FriendAdded implements widget.Recorder.
func (m *Metrics) FriendAdded() {
	m.friendsAdded.Inc()
}

// Settled implements widget.Recorder.
func (m *Metrics) Settled(payer calculator.Payer) {
	m.settlements.WithLabelValues(string(payer)).Inc()
}

// Ignored implements widget.Recorder.
func (m *Metrics) Ignored(form string) {
	m.ignored.WithLabelValues(form).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

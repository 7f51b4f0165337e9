package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ormanli/rewards/internal/app/rewards"
)

const namespace = "rewards"

// Metrics records reward outcomes as Prometheus metrics.
type Metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	contributed prometheus.Counter
}

// New creates reward metrics and registers them with the registerer.
func New(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of reward requests by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of reward requests by result.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		contributed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contributed_cents_total",
			Help:      "Total amount contributed to accounts, in cents.",
		}),
	}

	registerer.MustRegister(m.requests, m.duration, m.contributed)

	return m
}

// ObserveReward implements rewards.Recorder.
func (m *Metrics) ObserveReward(result string, duration time.Duration, contributed rewards.MonetaryAmount) {
	m.requests.WithLabelValues(result).Inc()
	m.duration.WithLabelValues(result).Observe(duration.Seconds())

	if contributed > 0 {
		m.contributed.Add(float64(contributed))
	}
}

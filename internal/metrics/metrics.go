package metrics

import "github.com/prometheus/client_golang/prometheus"

// GatewayMetrics exposes counters/histograms for the webhook -> chatbot ->
// reply flow. All observers are nil-safe so wiring metrics stays optional.
type GatewayMetrics struct {
	updatesTotal   *prometheus.CounterVec
	backendTotal   *prometheus.CounterVec
	repliesTotal   *prometheus.CounterVec
	backendLatency *prometheus.HistogramVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		updatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "webhook",
			Name:      "updates_total",
			Help:      "Inbound platform updates by outcome",
		}, []string{"platform", "outcome"}),
		backendTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "chatbot",
			Name:      "requests_total",
			Help:      "Outbound chatbot requests by status",
		}, []string{"status"}),
		repliesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "platform",
			Name:      "replies_total",
			Help:      "Outbound platform replies by status",
		}, []string{"platform", "status"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gateway",
			Subsystem: "chatbot",
			Name:      "request_seconds",
			Help:      "Latency of chatbot requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.updatesTotal, m.backendTotal, m.repliesTotal, m.backendLatency)
	return m
}

func (m *GatewayMetrics) ObserveUpdate(platform, outcome string) {
	if m == nil {
		return
	}
	m.updatesTotal.WithLabelValues(platform, outcome).Inc()
}

func (m *GatewayMetrics) ObserveBackend(status string, seconds float64) {
	if m == nil {
		return
	}
	m.backendTotal.WithLabelValues(status).Inc()
	m.backendLatency.WithLabelValues(status).Observe(seconds)
}

func (m *GatewayMetrics) ObserveReply(platform, status string) {
	if m == nil {
		return
	}
	m.repliesTotal.WithLabelValues(platform, status).Inc()
}

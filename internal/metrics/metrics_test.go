package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGatewayMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGatewayMetrics(reg)

	m.ObserveUpdate("telegram", "answered")
	m.ObserveUpdate("telegram", "fallback")
	m.ObserveBackend("ok", 0.12)
	m.ObserveReply("telegram", "ok")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["gateway_webhook_updates_total"])
	assert.True(t, names["gateway_chatbot_requests_total"])
	assert.True(t, names["gateway_platform_replies_total"])
	assert.True(t, names["gateway_chatbot_request_seconds"])
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *GatewayMetrics
	m.ObserveUpdate("telegram", "ignored")
	m.ObserveBackend("error", 1)
	m.ObserveReply("telegram", "error")
}

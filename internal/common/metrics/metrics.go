// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suada_tool_calls_total",
			Help: "Total number of tool calls received",
		},
		[]string{"tool"},
	)

	ToolCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suada_tool_call_failures_total",
			Help: "Total number of tool calls that returned an error result",
		},
		[]string{"tool", "error_code"},
	)

	ToolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "suada_tool_call_duration_seconds",
			Help: "Duration of tool call processing in seconds",
		},
		[]string{"tool"},
	)
)

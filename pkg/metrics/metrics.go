package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal 请求次数
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quill_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration 响应耗时
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quill_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "path"},
	)

	// TogglesTotal 关注/点赞/收藏切换次数，state 为切换后的状态
	TogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quill_toggles_total",
			Help: "Committed relation toggles",
		},
		[]string{"relation", "state"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, TogglesTotal)
}

// ObserveToggle relation 为 follow / like / bookmark
func ObserveToggle(relation string, present bool) {
	state := "off"
	if present {
		state = "on"
	}
	TogglesTotal.WithLabelValues(relation, state).Inc()
}

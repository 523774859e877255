package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobboard_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	wsConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "jobboard_ws_connections",
		Help: "Number of open websocket connections",
	})

	onlineUsers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "jobboard_online_users",
		Help: "Number of users with a registered connection",
	})

	chatMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_chat_messages_total",
		Help: "Chat send attempts by outcome",
	}, []string{"outcome"})

	recommendationCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_recommendation_cache_total",
		Help: "Recommendation cache lookups by result",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func ConnectionOpened() {
	wsConnections.Inc()
}

func ConnectionClosed() {
	wsConnections.Dec()
}

func SetOnlineUsers(n int) {
	if n < 0 {
		n = 0
	}
	onlineUsers.Set(float64(n))
}

// ObserveChatMessage counts a relay outcome (delivered, stored, rejected, failed).
func ObserveChatMessage(outcome string) {
	chatMessages.WithLabelValues(outcome).Inc()
}

func ObserveRecommendationCache(hit bool) {
	if hit {
		recommendationCache.WithLabelValues("hit").Inc()
		return
	}
	recommendationCache.WithLabelValues("miss").Inc()
}

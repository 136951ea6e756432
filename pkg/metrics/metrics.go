package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	Orders    *prometheus.CounterVec
}

func NewServerMetrics() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "canteen",
		Subsystem: "orders",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"path", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "canteen",
		Subsystem: "orders",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"path"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "canteen",
		Subsystem: "orders",
		Name:      "orders_total",
		Help:      "Orders by resulting status.",
	}, []string{"status"})

	prometheus.MustRegister(requests, latency, orders)
	return &ServerMetrics{Requests: requests, LatencyMS: latency, Orders: orders}
}

// RecordOrder counts an order reaching a status, either at creation or
// through a status update.
func (m *ServerMetrics) RecordOrder(status string) {
	m.Orders.WithLabelValues(status).Inc()
}

// Middleware records request counts and latency per route template.
func (m *ServerMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.Requests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(path).Observe(float64(time.Since(start).Milliseconds()))
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

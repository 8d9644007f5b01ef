package metrics

import (
	"strconv"
	"time"

	"card_ledger/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type LedgerMetrics struct {
	mutations       *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewLedgerMetrics registers the ledger collectors on reg.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	m := &LedgerMetrics{
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "card_ledger_mutations_total",
				Help: "Spend and top-up calls by kind and outcome code",
			},
			[]string{"kind", "code"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "card_ledger_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "card_ledger_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(m.mutations, m.requests, m.requestDuration)
	return m
}

func (m *LedgerMetrics) ObserveMutation(kind models.TransactionKind, code string) {
	m.mutations.WithLabelValues(string(kind), code).Inc()
}

func (m *LedgerMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the collectors gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}

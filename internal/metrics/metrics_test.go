package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"card_ledger/internal/metrics"
	"card_ledger/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveMutation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewLedgerMetrics(reg)

	m.ObserveMutation(models.KindSpend, "OK")
	m.ObserveMutation(models.KindSpend, "OK")
	m.ObserveMutation(models.KindTopUp, "CONCURRENT_MODIFICATION")

	count, err := testutil.GatherAndCount(reg, "card_ledger_mutations_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.NewLedgerMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", metrics.Handler(reg))

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping/"+string(rune('a'+i)), nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `card_ledger_http_requests_total{method="GET",route="/ping/:id",status="204"} 3`)
}

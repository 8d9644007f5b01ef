package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"card_ledger/internal/handlers"
	"card_ledger/internal/metrics"
	"card_ledger/internal/models"
	"card_ledger/internal/repository"
	"card_ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func setupIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := repository.NewMemoryRepository()
	reg := prometheus.NewRegistry()
	m := metrics.NewLedgerMetrics(reg)
	ledger := service.NewLedgerService(store, testLogger, m)
	query := service.NewQueryService(store, testLogger)

	r := gin.New()
	r.Use(handlers.RequestID(), handlers.RequestLogger(testLogger), m.Middleware())
	handlers.NewCardHTTPHandler(ledger, query).RegisterRoutes(r)
	r.GET("/metrics", metrics.Handler(reg))
	return r
}

func TestIntegration_CardLifecycle(t *testing.T) {
	r := setupIntegrationRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/cards", map[string]interface{}{
		"cardholderName": "Alice",
		"initialBalance": "100",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var card models.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	base := "/api/v1/cards/" + card.ID.String()

	w = doJSON(r, http.MethodPost, base+"/spend", map[string]interface{}{"amount": "40"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.RemainingBalance.Equal(decimal.NewFromInt(60)))

	w = doJSON(r, http.MethodPost, base+"/topup", map[string]interface{}{"amount": "20"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.RemainingBalance.Equal(decimal.NewFromInt(80)))

	w = doJSON(r, http.MethodPost, base+"/spend", map[string]interface{}{"amount": "500"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient balance")

	w = doJSON(r, http.MethodPost, base+"/topup", map[string]interface{}{"amount": "-10"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, base+"/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var txns []models.Transaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txns))
	require.Len(t, txns, 2)
	assert.Equal(t, models.KindSpend, txns[0].Kind)
	assert.Equal(t, models.KindTopUp, txns[1].Kind)

	w = doJSON(r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.True(t, card.Balance.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, int64(2), card.Version)

	w = doJSON(r, http.MethodGet, base+"/reconciliation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rec models.Reconciliation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.True(t, rec.Consistent)
	assert.Equal(t, 2, rec.TransactionCount)

	w = doJSON(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `card_ledger_mutations_total{code="INSUFFICIENT_BALANCE",kind="SPEND"} 1`)
	assert.Contains(t, w.Body.String(), `card_ledger_mutations_total{code="OK",kind="TOPUP"} 1`)
}

func TestIntegration_UnknownCard(t *testing.T) {
	r := setupIntegrationRouter(t)
	w := doJSON(r, http.MethodGet, "/api/v1/cards/"+uuid.NewString()+"/transactions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

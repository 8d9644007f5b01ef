package handlers

import (
	"context"
	"net/http"

	"card_ledger/internal/models"
	"card_ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=http_handlers.go -destination=mocks/mock_card_services.go -package=mocks LedgerEngine,TransactionQuery

type LedgerEngine interface {
	CreateCard(ctx context.Context, cardholderName string, initialBalance decimal.Decimal) (*models.Card, error)
	Spend(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	TopUp(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*models.Card, error)
}

type TransactionQuery interface {
	GetTransactions(ctx context.Context, cardID uuid.UUID) ([]models.Transaction, error)
	Reconcile(ctx context.Context, cardID uuid.UUID) (*models.Reconciliation, error)
}

type CardHTTPHandler struct {
	ledger LedgerEngine
	query  TransactionQuery
}

func NewCardHTTPHandler(ledger LedgerEngine, query TransactionQuery) *CardHTTPHandler {
	return &CardHTTPHandler{ledger: ledger, query: query}
}

func (h *CardHTTPHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/cards", h.HandleCreateCard)
		v1.GET("/cards/:card_id", h.HandleGetCard)
		v1.POST("/cards/:card_id/spend", h.HandleSpend)
		v1.POST("/cards/:card_id/topup", h.HandleTopUp)
		v1.GET("/cards/:card_id/transactions", h.HandleGetTransactions)
		v1.GET("/cards/:card_id/reconciliation", h.HandleReconcile)
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (h *CardHTTPHandler) HandleCreateCard(c *gin.Context) {
	var req models.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error(), "code": service.CodeInvalidArgument})
		return
	}
	card, err := h.ledger.CreateCard(c.Request.Context(), req.CardholderName, *req.InitialBalance)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *CardHTTPHandler) HandleGetCard(c *gin.Context) {
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}
	card, err := h.ledger.GetCard(c.Request.Context(), cardID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHTTPHandler) HandleSpend(c *gin.Context) {
	h.handleMutation(c, h.ledger.Spend)
}

func (h *CardHTTPHandler) HandleTopUp(c *gin.Context) {
	h.handleMutation(c, h.ledger.TopUp)
}

func (h *CardHTTPHandler) handleMutation(c *gin.Context, apply func(context.Context, uuid.UUID, decimal.Decimal) (decimal.Decimal, error)) {
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}
	var req models.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error(), "code": service.CodeInvalidArgument})
		return
	}
	balance, err := apply(c.Request.Context(), cardID, *req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BalanceResponse{CardID: cardID, RemainingBalance: balance})
}

func (h *CardHTTPHandler) HandleGetTransactions(c *gin.Context) {
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}
	txns, err := h.query.GetTransactions(c.Request.Context(), cardID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

func (h *CardHTTPHandler) HandleReconcile(c *gin.Context) {
	cardID, ok := parseCardID(c)
	if !ok {
		return
	}
	rec, err := h.query.Reconcile(c.Request.Context(), cardID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func parseCardID(c *gin.Context) (uuid.UUID, bool) {
	cardID, err := uuid.Parse(c.Param("card_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid card_id", Code: service.CodeInvalidArgument})
		return uuid.Nil, false
	}
	return cardID, true
}

func writeError(c *gin.Context, err error) {
	code := service.Code(err)
	c.JSON(statusFor(code), models.ErrorResponse{Error: err.Error(), Code: code})
}

func statusFor(code string) int {
	switch code {
	case service.CodeInvalidArgument:
		return http.StatusBadRequest
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeInsufficientBalance:
		return http.StatusUnprocessableEntity
	case service.CodeConcurrentModification:
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}

package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCardRequest struct {
	CardholderName string           `json:"cardholderName" binding:"required"`
	InitialBalance *decimal.Decimal `json:"initialBalance" binding:"required"`
}

type AmountRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

type BalanceResponse struct {
	CardID           uuid.UUID       `json:"cardId"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

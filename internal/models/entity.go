package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindSpend TransactionKind = "SPEND"
	KindTopUp TransactionKind = "TOPUP"
)

func (k TransactionKind) Valid() bool {
	return k == KindSpend || k == KindTopUp
}

type Card struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	CardholderName string          `db:"cardholder_name" json:"cardholderName"`
	Balance        decimal.Decimal `db:"balance" json:"balance"`
	InitialBalance decimal.Decimal `db:"initial_balance" json:"initialBalance"`
	Version        int64           `db:"version" json:"version"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
}

// Transaction is an append-only record of one balance change. Amount is
// always a positive magnitude; Kind carries the direction.
type Transaction struct {
	ID        ulid.ULID       `db:"id" json:"id"`
	CardID    uuid.UUID       `db:"card_id" json:"cardId"`
	Kind      TransactionKind `db:"kind" json:"type"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// Reconciliation is the result of replaying a card's transaction log
// against its initial balance.
type Reconciliation struct {
	CardID           uuid.UUID       `json:"cardId"`
	InitialBalance   decimal.Decimal `json:"initialBalance"`
	TotalTopUps      decimal.Decimal `json:"totalTopUps"`
	TotalSpends      decimal.Decimal `json:"totalSpends"`
	ExpectedBalance  decimal.Decimal `json:"expectedBalance"`
	ActualBalance    decimal.Decimal `json:"actualBalance"`
	TransactionCount int             `json:"transactionCount"`
	Consistent       bool            `json:"consistent"`
}

package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGSchema creates the card and transaction tables. Transactions are ordered
// by seq, which per card follows commit order because the card row lock is
// held while the row is inserted.
const PGSchema = `
	CREATE TABLE IF NOT EXISTS cards (
		id UUID PRIMARY KEY,
		cardholder_name TEXT NOT NULL,
		balance NUMERIC(19, 2) NOT NULL CHECK (balance >= 0),
		initial_balance NUMERIC(19, 2) NOT NULL CHECK (initial_balance >= 0),
		version BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS card_transactions (
		seq BIGSERIAL PRIMARY KEY,
		id CHAR(26) NOT NULL UNIQUE,
		card_id UUID NOT NULL REFERENCES cards(id) ON DELETE RESTRICT,
		kind VARCHAR(10) NOT NULL CHECK (kind IN ('SPEND', 'TOPUP')),
		amount NUMERIC(19, 2) NOT NULL CHECK (amount > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
	);
	CREATE INDEX IF NOT EXISTS idx_card_transactions_card ON card_transactions(card_id, seq);
`

func MigratePG(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, PGSchema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

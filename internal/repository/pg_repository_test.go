package repository_test

import (
	"context"
	"testing"

	"card_ledger/internal/models"
	"card_ledger/internal/repository"
	"card_ledger/internal/testutil"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardPGRepository_Contract(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	runStoreContract(t, repository.NewCardPGRepository(pool, testLogger))
}

func TestCardPGRepository_FailedAppendRollsBackBalance(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewCardPGRepository(pool, testLogger)
	ctx := context.Background()

	card, err := repo.InsertCard(ctx, &models.Card{
		CardholderName: "Alice",
		Balance:        decimal.NewFromInt(100),
		InitialBalance: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	next := *card
	next.Balance = decimal.NewFromInt(60)
	next.Version = 1
	// The amount CHECK rejects the log row after the card row was updated.
	err = repo.CommitMutation(ctx, &next, 0, &models.Transaction{
		ID:     ulid.Make(),
		CardID: card.ID,
		Kind:   models.KindSpend,
		Amount: decimal.NewFromInt(-40),
	})
	require.Error(t, err)

	loaded, txns, err := repo.LoadCardWithTransactions(ctx, card.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Balance.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, int64(0), loaded.Version)
	assert.Empty(t, txns)
}

func TestCardPGRepository_RejectsNegativeBalance(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewCardPGRepository(pool, testLogger)

	_, err := repo.InsertCard(context.Background(), &models.Card{
		CardholderName: "Mallory",
		Balance:        decimal.NewFromInt(-1),
		InitialBalance: decimal.NewFromInt(-1),
	})
	assert.Error(t, err)

	_, err = repo.LoadCard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
}

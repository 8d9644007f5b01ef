package repository_test

import (
	"context"
	"testing"

	"card_ledger/internal/models"
	"card_ledger/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardGormRepository_Contract(t *testing.T) {
	repo, _, teardown := testutil.SetupTestMySQL(t)
	defer teardown()
	runStoreContract(t, repo)
}

func TestCardGormRepository_PreservesScale(t *testing.T) {
	repo, db, teardown := testutil.SetupTestMySQL(t)
	defer teardown()
	ctx := context.Background()

	card, err := repo.InsertCard(ctx, &models.Card{
		CardholderName: "Alice",
		Balance:        decimal.RequireFromString("12.34"),
		InitialBalance: decimal.RequireFromString("12.34"),
	})
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.Raw("SELECT CAST(balance AS CHAR) FROM cards WHERE id = ?", card.ID.String()).Scan(&raw).Error)
	assert.Equal(t, "12.34", raw)

	loaded, err := repo.LoadCard(ctx, card.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Balance.Equal(decimal.RequireFromString("12.34")))
}

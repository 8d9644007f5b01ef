package repository_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"card_ledger/internal/models"
	"card_ledger/internal/repository"
	"card_ledger/internal/service"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// runStoreContract checks the behavior every service.CardStore must share.
func runStoreContract(t *testing.T, store service.CardStore) {
	ctx := context.Background()

	insert := func(t *testing.T, balance string) *models.Card {
		t.Helper()
		b := decimal.RequireFromString(balance)
		card, err := store.InsertCard(ctx, &models.Card{CardholderName: "Alice", Balance: b, InitialBalance: b})
		require.NoError(t, err)
		return card
	}
	mutation := func(card *models.Card, kind models.TransactionKind, amount string, balance string) (*models.Card, *models.Transaction) {
		next := *card
		next.Balance = decimal.RequireFromString(balance)
		next.Version = card.Version + 1
		return &next, &models.Transaction{
			ID:     ulid.Make(),
			CardID: card.ID,
			Kind:   kind,
			Amount: decimal.RequireFromString(amount),
		}
	}

	t.Run("InsertAssignsIdentity", func(t *testing.T) {
		card := insert(t, "100.50")
		assert.NotEqual(t, uuid.Nil, card.ID)
		assert.False(t, card.CreatedAt.IsZero())

		loaded, err := store.LoadCard(ctx, card.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", loaded.CardholderName)
		assert.True(t, loaded.Balance.Equal(decimal.RequireFromString("100.50")))
		assert.True(t, loaded.InitialBalance.Equal(decimal.RequireFromString("100.50")))
		assert.Equal(t, int64(0), loaded.Version)
	})

	t.Run("LoadMissingCard", func(t *testing.T) {
		_, err := store.LoadCard(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrCardNotFound)

		_, _, err = store.LoadCardWithTransactions(ctx, uuid.New())
		assert.ErrorIs(t, err, repository.ErrCardNotFound)
	})

	t.Run("CommitAppliesBalanceAndLogTogether", func(t *testing.T) {
		card := insert(t, "100")
		next, txn := mutation(card, models.KindSpend, "40", "60")
		require.NoError(t, store.CommitMutation(ctx, next, card.Version, txn))
		assert.False(t, txn.CreatedAt.IsZero())

		loaded, txns, err := store.LoadCardWithTransactions(ctx, card.ID)
		require.NoError(t, err)
		assert.True(t, loaded.Balance.Equal(decimal.NewFromInt(60)))
		assert.Equal(t, int64(1), loaded.Version)
		require.Len(t, txns, 1)
		assert.Equal(t, txn.ID, txns[0].ID)
		assert.Equal(t, models.KindSpend, txns[0].Kind)
		assert.True(t, txns[0].Amount.Equal(decimal.NewFromInt(40)))
	})

	t.Run("StaleVersionLeavesStateUntouched", func(t *testing.T) {
		card := insert(t, "100")
		first, txn := mutation(card, models.KindTopUp, "10", "110")
		require.NoError(t, store.CommitMutation(ctx, first, 0, txn))

		stale, staleTxn := mutation(card, models.KindSpend, "50", "50")
		err := store.CommitMutation(ctx, stale, 0, staleTxn)
		assert.ErrorIs(t, err, repository.ErrVersionConflict)

		loaded, txns, err := store.LoadCardWithTransactions(ctx, card.ID)
		require.NoError(t, err)
		assert.True(t, loaded.Balance.Equal(decimal.NewFromInt(110)))
		assert.Equal(t, int64(1), loaded.Version)
		assert.Len(t, txns, 1)
	})

	t.Run("CommitOnMissingCard", func(t *testing.T) {
		ghost := &models.Card{ID: uuid.New(), Balance: decimal.NewFromInt(1), Version: 1}
		err := store.CommitMutation(ctx, ghost, 0, &models.Transaction{
			ID: ulid.Make(), CardID: ghost.ID, Kind: models.KindTopUp, Amount: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, repository.ErrCardNotFound)
	})

	t.Run("ListKeepsCommitOrder", func(t *testing.T) {
		card := insert(t, "0")
		other := insert(t, "5")
		current := card
		var want []ulid.ULID
		for i := 1; i <= 5; i++ {
			next, txn := mutation(current, models.KindTopUp, "1", decimal.NewFromInt(int64(i)).String())
			require.NoError(t, store.CommitMutation(ctx, next, current.Version, txn))
			want = append(want, txn.ID)
			current = next
		}
		otherNext, otherTxn := mutation(other, models.KindSpend, "5", "0")
		require.NoError(t, store.CommitMutation(ctx, otherNext, 0, otherTxn))

		txns, err := store.ListTransactionsByCard(ctx, card.ID)
		require.NoError(t, err)
		require.Len(t, txns, len(want))
		for i, txn := range txns {
			assert.Equal(t, want[i], txn.ID)
			assert.Equal(t, card.ID, txn.CardID)
		}
	})

	t.Run("ListForCardWithoutTransactions", func(t *testing.T) {
		card := insert(t, "1")
		txns, err := store.ListTransactionsByCard(ctx, card.ID)
		require.NoError(t, err)
		assert.Empty(t, txns)
	})

	t.Run("ConcurrentCommitsOnSameVersion", func(t *testing.T) {
		card := insert(t, "100")
		const racers = 8
		errs := make([]error, racers)
		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < racers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				next, txn := mutation(card, models.KindSpend, "10", "90")
				<-start
				errs[i] = store.CommitMutation(ctx, next, 0, txn)
			}(i)
		}
		close(start)
		wg.Wait()

		wins := 0
		for _, err := range errs {
			if err == nil {
				wins++
				continue
			}
			assert.ErrorIs(t, err, repository.ErrVersionConflict)
		}
		assert.Equal(t, 1, wins)

		loaded, txns, err := store.LoadCardWithTransactions(ctx, card.ID)
		require.NoError(t, err)
		assert.True(t, loaded.Balance.Equal(decimal.NewFromInt(90)))
		assert.Equal(t, int64(1), loaded.Version)
		assert.Len(t, txns, 1)
	})
}

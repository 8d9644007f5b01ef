package service

import (
	"context"

	"card_ledger/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_card_store.go -package=mocks CardStore

// CardStore is the durable collaborator of the ledger. Implementations report
// a missing card with repository.ErrCardNotFound and a stale expected version
// with repository.ErrVersionConflict.
type CardStore interface {
	// InsertCard persists a new card and assigns its identity and creation time.
	InsertCard(ctx context.Context, card *models.Card) (*models.Card, error)
	LoadCard(ctx context.Context, id uuid.UUID) (*models.Card, error)
	// CommitMutation saves card only if its stored version still equals
	// expectedVersion and appends txn in the same atomic unit. On success
	// txn.CreatedAt holds the recorded time.
	CommitMutation(ctx context.Context, card *models.Card, expectedVersion int64, txn *models.Transaction) error
	// ListTransactionsByCard returns the log oldest first, in commit order.
	ListTransactionsByCard(ctx context.Context, id uuid.UUID) ([]models.Transaction, error)
	// LoadCardWithTransactions reads the card and its log from one snapshot.
	LoadCardWithTransactions(ctx context.Context, id uuid.UUID) (*models.Card, []models.Transaction, error)
}

// MutationRecorder observes the outcome of every Spend and TopUp call.
type MutationRecorder interface {
	ObserveMutation(kind models.TransactionKind, code string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveMutation(models.TransactionKind, string) {}

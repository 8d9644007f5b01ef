package repository

import (
	"context"
	"sync"
	"time"

	"card_ledger/internal/models"

	"github.com/google/uuid"
)

// MemoryRepository keeps cards and their logs in process memory. Writers hold
// the mutex exclusively for the whole compare-and-swap plus append; readers
// share it, so they never see one half of a mutation.
type MemoryRepository struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]models.Card
	txns  map[uuid.UUID][]models.Transaction
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		cards: make(map[uuid.UUID]models.Card),
		txns:  make(map[uuid.UUID][]models.Transaction),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) InsertCard(ctx context.Context, card *models.Card) (*models.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := *card
	out.ID = uuid.New()
	out.CreatedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[out.ID] = out
	return &out, nil
}

func (r *MemoryRepository) LoadCard(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return &card, nil
}

func (r *MemoryRepository) CommitMutation(ctx context.Context, card *models.Card, expectedVersion int64, txn *models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.cards[card.ID]
	if !ok {
		return ErrCardNotFound
	}
	if stored.Version != expectedVersion {
		return ErrVersionConflict
	}

	txn.CreatedAt = r.now()
	stored.Balance = card.Balance
	stored.Version = card.Version
	r.cards[card.ID] = stored
	r.txns[card.ID] = append(r.txns[card.ID], *txn)
	return nil
}

func (r *MemoryRepository) ListTransactionsByCard(ctx context.Context, id uuid.UUID) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.copyTransactions(id), nil
}

func (r *MemoryRepository) LoadCardWithTransactions(ctx context.Context, id uuid.UUID) (*models.Card, []models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[id]
	if !ok {
		return nil, nil, ErrCardNotFound
	}
	return &card, r.copyTransactions(id), nil
}

// copyTransactions must be called with mu held.
func (r *MemoryRepository) copyTransactions(id uuid.UUID) []models.Transaction {
	out := make([]models.Transaction, len(r.txns[id]))
	copy(out, r.txns[id])
	return out
}

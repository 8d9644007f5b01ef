package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"card_ledger/internal/models"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// amountScale is the number of fractional digits the ledger stores.
const amountScale = 2

// LedgerService is the only writer of card balances and transactions.
// It does not retry on ErrConcurrentModification; callers re-read and
// re-attempt.
type LedgerService struct {
	store    CardStore
	logger   *slog.Logger
	recorder MutationRecorder
}

func NewLedgerService(store CardStore, logger *slog.Logger, recorder MutationRecorder) *LedgerService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &LedgerService{
		store:    store,
		logger:   logger,
		recorder: recorder,
	}
}

func (s *LedgerService) CreateCard(ctx context.Context, cardholderName string, initialBalance decimal.Decimal) (*models.Card, error) {
	name := strings.TrimSpace(cardholderName)
	if name == "" {
		return nil, invalidArgument("cardholder name must not be empty")
	}
	if initialBalance.IsNegative() {
		return nil, invalidArgument("initial balance %s must not be negative", initialBalance)
	}
	if !hasLedgerScale(initialBalance) {
		return nil, invalidArgument("initial balance %s has more than %d fractional digits", initialBalance, amountScale)
	}

	card, err := s.store.InsertCard(ctx, &models.Card{
		CardholderName: name,
		Balance:        initialBalance,
		InitialBalance: initialBalance,
		Version:        0,
	})
	if err != nil {
		s.logger.Error("CreateCard failed",
			slog.String("cardholder", name),
			slog.Any("err", err),
		)
		return nil, translateStoreError(err, uuid.Nil, initialBalance)
	}
	s.logger.Info("Card created",
		slog.String("card_id", card.ID.String()),
		slog.String("initial_balance", initialBalance.String()),
	)
	return card, nil
}

func (s *LedgerService) Spend(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.mutate(ctx, cardID, amount, models.KindSpend)
}

func (s *LedgerService) TopUp(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.mutate(ctx, cardID, amount, models.KindTopUp)
}

func (s *LedgerService) GetCard(ctx context.Context, cardID uuid.UUID) (*models.Card, error) {
	card, err := s.store.LoadCard(ctx, cardID)
	if err != nil {
		err = translateStoreError(err, cardID, decimal.Zero)
		s.logReadFailure("GetCard", cardID, err)
		return nil, err
	}
	return card, nil
}

// mutate evaluates the balance check and the write against the same loaded
// snapshot; the write only lands if the card's version is unchanged.
func (s *LedgerService) mutate(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal, kind models.TransactionKind) (balance decimal.Decimal, err error) {
	defer func() {
		s.recorder.ObserveMutation(kind, Code(err))
	}()

	if !amount.IsPositive() {
		s.logger.Warn("Mutation rejected: amount must be positive",
			slog.String("card_id", cardID.String()),
			slog.String("kind", string(kind)),
			slog.String("amount", amount.String()),
		)
		return decimal.Zero, invalidArgument("%s amount %s must be positive", kind, amount)
	}
	if !hasLedgerScale(amount) {
		return decimal.Zero, invalidArgument("%s amount %s has more than %d fractional digits", kind, amount, amountScale)
	}

	card, err := s.store.LoadCard(ctx, cardID)
	if err != nil {
		err = translateStoreError(err, cardID, amount)
		s.logMutationFailure(kind, cardID, amount, err)
		return decimal.Zero, err
	}

	expectedVersion := card.Version
	current := card.Balance
	switch kind {
	case models.KindSpend:
		if amount.GreaterThan(current) {
			err = fmt.Errorf("%w: card %s, amount %s, balance %s", ErrInsufficientBalance, cardID, amount, current)
			s.logMutationFailure(kind, cardID, amount, err)
			return current, err
		}
		card.Balance = current.Sub(amount)
	case models.KindTopUp:
		card.Balance = current.Add(amount)
	}
	card.Version = expectedVersion + 1

	txn := &models.Transaction{
		ID:     ulid.Make(),
		CardID: cardID,
		Kind:   kind,
		Amount: amount,
	}
	if err = s.store.CommitMutation(ctx, card, expectedVersion, txn); err != nil {
		err = translateStoreError(err, cardID, amount)
		s.logMutationFailure(kind, cardID, amount, err)
		return current, err
	}

	s.logger.Debug("Mutation committed",
		slog.String("card_id", cardID.String()),
		slog.String("kind", string(kind)),
		slog.String("amount", amount.String()),
		slog.String("balance", card.Balance.String()),
		slog.Int64("version", card.Version),
	)
	return card.Balance, nil
}

func (s *LedgerService) logMutationFailure(kind models.TransactionKind, cardID uuid.UUID, amount decimal.Decimal, err error) {
	attrs := []any{
		slog.String("card_id", cardID.String()),
		slog.String("kind", string(kind)),
		slog.String("amount", amount.String()),
		slog.Any("err", err),
	}
	if Code(err) == CodeUnavailable {
		s.logger.Error("Mutation failed", attrs...)
		return
	}
	s.logger.Warn("Mutation rejected", attrs...)
}

func (s *LedgerService) logReadFailure(op string, cardID uuid.UUID, err error) {
	if Code(err) == CodeNotFound {
		s.logger.Warn(op+": card not found", slog.String("card_id", cardID.String()))
		return
	}
	s.logger.Error(op+" failed",
		slog.String("card_id", cardID.String()),
		slog.Any("err", err),
	)
}

func hasLedgerScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(amountScale))
}

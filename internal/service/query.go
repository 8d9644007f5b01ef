package service

import (
	"context"
	"log/slog"

	"card_ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QueryService serves read-only views of cards. It never writes and never
// takes the row lock used by mutations.
type QueryService struct {
	store  CardStore
	logger *slog.Logger
}

func NewQueryService(store CardStore, logger *slog.Logger) *QueryService {
	return &QueryService{
		store:  store,
		logger: logger,
	}
}

// GetTransactions returns the card's log oldest first. Each call is a fresh
// read of committed state.
func (s *QueryService) GetTransactions(ctx context.Context, cardID uuid.UUID) ([]models.Transaction, error) {
	if _, err := s.store.LoadCard(ctx, cardID); err != nil {
		return nil, s.readFailure("GetTransactions", cardID, err)
	}
	txns, err := s.store.ListTransactionsByCard(ctx, cardID)
	if err != nil {
		return nil, s.readFailure("GetTransactions", cardID, err)
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	return txns, nil
}

// Reconcile replays the log against the initial balance. Card and log are
// read from one snapshot so a concurrent commit cannot show up half-applied.
func (s *QueryService) Reconcile(ctx context.Context, cardID uuid.UUID) (*models.Reconciliation, error) {
	card, txns, err := s.store.LoadCardWithTransactions(ctx, cardID)
	if err != nil {
		return nil, s.readFailure("Reconcile", cardID, err)
	}

	rec := Replay(card.InitialBalance, txns)
	rec.CardID = card.ID
	rec.ActualBalance = card.Balance
	rec.Consistent = rec.ExpectedBalance.Equal(card.Balance)
	if !rec.Consistent {
		s.logger.Error("Reconciliation mismatch",
			slog.String("card_id", cardID.String()),
			slog.String("expected", rec.ExpectedBalance.String()),
			slog.String("actual", card.Balance.String()),
		)
	}
	return &rec, nil
}

// Replay folds a transaction log onto an initial balance.
func Replay(initial decimal.Decimal, txns []models.Transaction) models.Reconciliation {
	rec := models.Reconciliation{
		InitialBalance:   initial,
		TotalTopUps:      decimal.Zero,
		TotalSpends:      decimal.Zero,
		TransactionCount: len(txns),
	}
	for _, t := range txns {
		switch t.Kind {
		case models.KindTopUp:
			rec.TotalTopUps = rec.TotalTopUps.Add(t.Amount)
		case models.KindSpend:
			rec.TotalSpends = rec.TotalSpends.Add(t.Amount)
		}
	}
	rec.ExpectedBalance = initial.Add(rec.TotalTopUps).Sub(rec.TotalSpends)
	return rec
}

func (s *QueryService) readFailure(op string, cardID uuid.UUID, err error) error {
	err = translateStoreError(err, cardID, decimal.Zero)
	if Code(err) == CodeNotFound {
		s.logger.Warn(op+": card not found", slog.String("card_id", cardID.String()))
		return err
	}
	s.logger.Error(op+" failed",
		slog.String("card_id", cardID.String()),
		slog.Any("err", err),
	)
	return err
}

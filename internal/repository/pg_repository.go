package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"card_ledger/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

type CardPGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCardPGRepository(pool *pgxpool.Pool, logger *slog.Logger) *CardPGRepository {
	return &CardPGRepository{
		pool:   pool,
		logger: logger,
	}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *CardPGRepository) InsertCard(ctx context.Context, card *models.Card) (*models.Card, error) {
	out := *card
	out.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO cards (id, cardholder_name, balance, initial_balance, version)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		out.ID, out.CardholderName, out.Balance, out.InitialBalance, out.Version,
	).Scan(&out.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert card",
			slog.String("card_id", out.ID.String()),
			slog.Any("err", err),
		)
		return nil, err
	}
	return &out, nil
}

func (r *CardPGRepository) LoadCard(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	return loadCard(ctx, r.pool, id)
}

func (r *CardPGRepository) CommitMutation(ctx context.Context, card *models.Card, expectedVersion int64, txn *models.Transaction) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error("Failed to begin transaction",
			slog.String("card_id", card.ID.String()),
			slog.Any("err", err),
		)
		return err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			r.logger.Error("Failed to rollback transaction",
				slog.String("card_id", card.ID.String()),
				slog.Any("err", err),
			)
		}
	}()

	if err := r.saveCardIfVersionMatches(ctx, tx, card, expectedVersion); err != nil {
		return err
	}
	if err := r.appendTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return ErrVersionConflict
		}
		r.logger.Error("Failed to commit transaction",
			slog.String("card_id", card.ID.String()),
			slog.Any("err", err),
		)
		return err
	}
	return nil
}

// saveCardIfVersionMatches is the compare-and-swap on (id, version). The
// UPDATE waits on a concurrent writer's row lock and re-checks the version
// once that writer commits, so only one of them matches.
func (r *CardPGRepository) saveCardIfVersionMatches(ctx context.Context, tx pgx.Tx, card *models.Card, expectedVersion int64) error {
	tag, err := tx.Exec(ctx, `
		UPDATE cards SET balance = $1, version = $2
		WHERE id = $3 AND version = $4`,
		card.Balance, card.Version, card.ID, expectedVersion,
	)
	if err != nil {
		if isSerializationFailure(err) {
			return ErrVersionConflict
		}
		r.logger.Error("Failed to update card balance",
			slog.String("card_id", card.ID.String()),
			slog.Any("err", err),
		)
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM cards WHERE id = $1)", card.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrCardNotFound
	}
	return ErrVersionConflict
}

func (r *CardPGRepository) appendTransaction(ctx context.Context, tx pgx.Tx, txn *models.Transaction) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO card_transactions (id, card_id, kind, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		txn.ID.String(), txn.CardID, string(txn.Kind), txn.Amount,
	).Scan(&txn.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert transaction",
			slog.String("card_id", txn.CardID.String()),
			slog.String("kind", string(txn.Kind)),
			slog.Any("amount", txn.Amount),
			slog.Any("err", err),
		)
		return err
	}
	return nil
}

func (r *CardPGRepository) ListTransactionsByCard(ctx context.Context, id uuid.UUID) ([]models.Transaction, error) {
	txns, err := listTransactions(ctx, r.pool, id)
	if err != nil {
		r.logger.Error("Failed to list transactions",
			slog.String("card_id", id.String()),
			slog.Any("err", err),
		)
		return nil, err
	}
	return txns, nil
}

// LoadCardWithTransactions reads inside a read-only repeatable read
// transaction, which gives both queries the same snapshot without locking.
func (r *CardPGRepository) LoadCardWithTransactions(ctx context.Context, id uuid.UUID) (*models.Card, []models.Transaction, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	card, err := loadCard(ctx, tx, id)
	if err != nil {
		return nil, nil, err
	}
	txns, err := listTransactions(ctx, tx, id)
	if err != nil {
		return nil, nil, err
	}
	return card, txns, nil
}

func loadCard(ctx context.Context, q querier, id uuid.UUID) (*models.Card, error) {
	var card models.Card
	err := q.QueryRow(ctx, `
		SELECT id, cardholder_name, balance, initial_balance, version, created_at
		FROM cards WHERE id = $1`, id,
	).Scan(&card.ID, &card.CardholderName, &card.Balance, &card.InitialBalance, &card.Version, &card.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func listTransactions(ctx context.Context, q querier, cardID uuid.UUID) ([]models.Transaction, error) {
	rows, err := q.Query(ctx, `
		SELECT id, card_id, kind, amount, created_at
		FROM card_transactions
		WHERE card_id = $1
		ORDER BY seq`, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := make([]models.Transaction, 0)
	for rows.Next() {
		var (
			t    models.Transaction
			id   string
			kind string
		)
		if err := rows.Scan(&id, &t.CardID, &kind, &t.Amount, &t.CreatedAt); err != nil {
			return nil, err
		}
		if t.ID, err = ulid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse transaction id %q: %w", id, err)
		}
		t.Kind = models.TransactionKind(kind)
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"card_ledger/internal/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type sqlCard struct {
	ID             string          `gorm:"primaryKey;type:char(36)"`
	CardholderName string          `gorm:"type:varchar(255);not null"`
	Balance        decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	Version        int64           `gorm:"not null;default:0"`
	CreatedAt      time.Time       `gorm:"type:datetime(6);not null"`
}

func (*sqlCard) TableName() string {
	return "cards"
}

type sqlTransaction struct {
	Seq       int64           `gorm:"primaryKey;autoIncrement"`
	ID        string          `gorm:"type:char(26);not null;uniqueIndex"`
	CardID    string          `gorm:"type:char(36);not null;index:idx_card_transactions_card,priority:1"`
	Kind      string          `gorm:"type:varchar(10);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(19,2);not null"`
	CreatedAt time.Time       `gorm:"type:datetime(6);not null"`
}

func (*sqlTransaction) TableName() string {
	return "card_transactions"
}

// CardGormRepository stores cards in MySQL through GORM.
type CardGormRepository struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time
}

func NewCardGormRepository(db *gorm.DB, logger *slog.Logger) *CardGormRepository {
	return &CardGormRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

func (r *CardGormRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&sqlCard{}, &sqlTransaction{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func (r *CardGormRepository) InsertCard(ctx context.Context, card *models.Card) (*models.Card, error) {
	row := sqlCard{
		ID:             uuid.NewString(),
		CardholderName: card.CardholderName,
		Balance:        card.Balance,
		InitialBalance: card.InitialBalance,
		Version:        card.Version,
		CreatedAt:      r.now(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Failed to insert card",
			slog.String("card_id", row.ID),
			slog.Any("err", err),
		)
		return nil, err
	}
	return row.toModel()
}

func (r *CardGormRepository) LoadCard(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	return r.loadCard(r.db.WithContext(ctx), id)
}

func (r *CardGormRepository) CommitMutation(ctx context.Context, card *models.Card, expectedVersion int64, txn *models.Transaction) error {
	recordedAt := r.now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&sqlCard{}).
			Where("id = ? AND version = ?", card.ID.String(), expectedVersion).
			Updates(map[string]interface{}{
				"balance": card.Balance,
				"version": card.Version,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			var count int64
			if err := tx.Model(&sqlCard{}).Where("id = ?", card.ID.String()).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrCardNotFound
			}
			return ErrVersionConflict
		}

		row := sqlTransaction{
			ID:        txn.ID.String(),
			CardID:    txn.CardID.String(),
			Kind:      string(txn.Kind),
			Amount:    txn.Amount,
			CreatedAt: recordedAt,
		}
		return tx.Create(&row).Error
	})
	if isMySQLDeadlock(err) {
		return ErrVersionConflict
	}
	if err != nil {
		if !errors.Is(err, ErrVersionConflict) && !errors.Is(err, ErrCardNotFound) {
			r.logger.Error("Failed to commit mutation",
				slog.String("card_id", card.ID.String()),
				slog.String("kind", string(txn.Kind)),
				slog.Any("err", err),
			)
		}
		return err
	}
	txn.CreatedAt = recordedAt
	return nil
}

func (r *CardGormRepository) ListTransactionsByCard(ctx context.Context, id uuid.UUID) ([]models.Transaction, error) {
	return r.listTransactions(r.db.WithContext(ctx), id)
}

func (r *CardGormRepository) LoadCardWithTransactions(ctx context.Context, id uuid.UUID) (*models.Card, []models.Transaction, error) {
	var (
		card *models.Card
		txns []models.Transaction
	)
	// InnoDB's repeatable read gives both reads the snapshot taken by the first.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if card, err = r.loadCard(tx, id); err != nil {
			return err
		}
		txns, err = r.listTransactions(tx, id)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return card, txns, nil
}

func (r *CardGormRepository) loadCard(db *gorm.DB, id uuid.UUID) (*models.Card, error) {
	var row sqlCard
	err := db.Where("id = ?", id.String()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toModel()
}

func (r *CardGormRepository) listTransactions(db *gorm.DB, id uuid.UUID) ([]models.Transaction, error) {
	var rows []sqlTransaction
	if err := db.Where("card_id = ?", id.String()).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	txns := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := row.toModel()
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func (row sqlCard) toModel() (*models.Card, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, fmt.Errorf("parse card id %q: %w", row.ID, err)
	}
	return &models.Card{
		ID:             id,
		CardholderName: row.CardholderName,
		Balance:        row.Balance,
		InitialBalance: row.InitialBalance,
		Version:        row.Version,
		CreatedAt:      row.CreatedAt,
	}, nil
}

func (row sqlTransaction) toModel() (models.Transaction, error) {
	id, err := ulid.Parse(row.ID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("parse transaction id %q: %w", row.ID, err)
	}
	cardID, err := uuid.Parse(row.CardID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("parse card id %q: %w", row.CardID, err)
	}
	return models.Transaction{
		ID:        id,
		CardID:    cardID,
		Kind:      models.TransactionKind(row.Kind),
		Amount:    row.Amount,
		CreatedAt: row.CreatedAt,
	}, nil
}

// isMySQLDeadlock reports an InnoDB deadlock, which rolls back the whole
// transaction and means a concurrent writer won.
func isMySQLDeadlock(err error) bool {
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1213
}

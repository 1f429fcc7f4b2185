package repository

import (
	"context"
	"strings"

	"github.com/KimLeno1/sky1/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardRepository is the simulated card vault. Saving a card whose number is
// already stored replaces the previous record.
type CardRepository interface {
	Save(ctx context.Context, card *models.SavedCard) error
	FindAll(ctx context.Context) ([]models.SavedCard, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Save(ctx context.Context, card *models.SavedCard) error {
	return saveCard(r.db.WithContext(ctx), card)
}

// saveCard upserts by card number so a re-saved card replaces its previous
// record. Shared with the checkout transaction.
func saveCard(db *gorm.DB, card *models.SavedCard) error {
	card.LastFour = lastFour(card.CardNumber)

	var existing models.SavedCard
	err := db.First(&existing, "card_number = ?", card.CardNumber).Error
	if err == nil {
		card.ID = existing.ID
		return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(card).Error
	}
	return db.Create(card).Error
}

func (r *cardRepository) FindAll(ctx context.Context) ([]models.SavedCard, error) {
	var cards []models.SavedCard
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.SavedCard{}, "id = ?", id).Error
}

func (r *cardRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.SavedCard{}).Error
}

func lastFour(number string) string {
	n := strings.ReplaceAll(number, " ", "")
	if len(n) < 4 {
		return n
	}
	return n[len(n)-4:]
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *models.TransactionRecord) error
	FindAll(ctx context.Context) ([]models.TransactionRecord, error)
	Clear(ctx context.Context) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *models.TransactionRecord) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) FindAll(ctx context.Context) ([]models.TransactionRecord, error) {
	var txns []models.TransactionRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *transactionRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.TransactionRecord{}).Error
}

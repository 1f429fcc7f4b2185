package repository

import (
	"context"

	"github.com/KimLeno1/sky1/internal/models"
	"gorm.io/gorm"
)

// CheckoutRepository persists the output of a completed payment in a single
// transaction: the booking, its ledger record, and the optional saved card.
// Either all three land or none do.
type CheckoutRepository interface {
	Create(ctx context.Context, booking *models.Booking, txn *models.TransactionRecord, card *models.SavedCard) error
}

type checkoutRepository struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) Create(ctx context.Context, booking *models.Booking, txn *models.TransactionRecord, card *models.SavedCard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		if card != nil {
			if err := saveCard(tx, card); err != nil {
				return err
			}
		}
		return tx.Create(txn).Error
	})
}

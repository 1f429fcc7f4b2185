package repository

import (
	"context"

	"github.com/KimLeno1/sky1/internal/models"
	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *models.PriceAlert) error
	FindAll(ctx context.Context) ([]models.PriceAlert, error)
	Delete(ctx context.Context, id string) error
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *models.PriceAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) FindAll(ctx context.Context) ([]models.PriceAlert, error) {
	var alerts []models.PriceAlert
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.PriceAlert{}, "id = ?", id).Error
}

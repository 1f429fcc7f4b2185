package service

import (
	"context"
	"testing"

	"github.com/KimLeno1/sky1/internal/models"
	"github.com/stretchr/testify/assert"
)

type mockAlertRepo struct {
	createFn func(ctx context.Context, alert *models.PriceAlert) error
	findFn   func(ctx context.Context) ([]models.PriceAlert, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockAlertRepo) Create(ctx context.Context, alert *models.PriceAlert) error {
	return m.createFn(ctx, alert)
}

func (m *mockAlertRepo) FindAll(ctx context.Context) ([]models.PriceAlert, error) {
	return m.findFn(ctx)
}

func (m *mockAlertRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func TestCreateAlertTargetsNinetyPercent(t *testing.T) {
	var stored *models.PriceAlert
	pub := &mockPublisher{}
	svc := NewAlertService(&mockAlertRepo{createFn: func(ctx context.Context, a *models.PriceAlert) error {
		stored = a
		return nil
	}}, pub)

	alert, err := svc.CreateAlert(context.Background(), "SFO", "JFK", models.CabinEconomy, 500)

	assert.NoError(t, err)
	assert.Equal(t, 450, alert.TargetPrice)
	assert.Equal(t, 500, alert.CurrentPrice)
	assert.Regexp(t, `^AL-[0-9A-F]{8}$`, alert.ID)
	assert.Equal(t, stored, alert)
	assert.Equal(t, []string{"alert.created"}, pub.events)
}

func TestCreateAlertTargetRoundsDown(t *testing.T) {
	svc := NewAlertService(&mockAlertRepo{createFn: func(ctx context.Context, a *models.PriceAlert) error {
		return nil
	}}, nil)

	alert, err := svc.CreateAlert(context.Background(), "JFK", "BOS", models.CabinEconomy, 99)

	assert.NoError(t, err)
	assert.Equal(t, 89, alert.TargetPrice)
}

func TestRemoveAlertMapsNotFound(t *testing.T) {
	svc := NewAlertService(&mockAlertRepo{deleteFn: func(ctx context.Context, id string) error {
		return assert.AnError
	}}, nil)

	err := svc.RemoveAlert(context.Background(), "AL-MISSING1")
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/KimLeno1/sky1/internal/models"
	"github.com/KimLeno1/sky1/internal/repository"
	"github.com/google/uuid"
)

var ErrAlertNotFound = errors.New("price alert not found")

type AlertService interface {
	CreateAlert(ctx context.Context, origin, destination string, cabin models.CabinClass, currentPrice int) (*models.PriceAlert, error)
	ListAlerts(ctx context.Context) ([]models.PriceAlert, error)
	RemoveAlert(ctx context.Context, id string) error
}

type alertService struct {
	alerts    repository.AlertRepository
	publisher EventPublisher
}

func NewAlertService(alerts repository.AlertRepository, publisher EventPublisher) AlertService {
	return &alertService{alerts: alerts, publisher: publisher}
}

// CreateAlert records a static watch on a route. The target is fixed at 90%
// of the price seen at creation time; nothing re-checks it afterwards.
func (s *alertService) CreateAlert(ctx context.Context, origin, destination string, cabin models.CabinClass, currentPrice int) (*models.PriceAlert, error) {
	alert := &models.PriceAlert{
		ID:           "AL-" + strings.ToUpper(uuid.NewString()[:8]),
		Origin:       origin,
		Destination:  destination,
		TargetPrice:  currentPrice * 9 / 10,
		CurrentPrice: currentPrice,
		CabinClass:   cabin,
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish("alert.created", alert)
	}
	return alert, nil
}

func (s *alertService) ListAlerts(ctx context.Context) ([]models.PriceAlert, error) {
	return s.alerts.FindAll(ctx)
}

func (s *alertService) RemoveAlert(ctx context.Context, id string) error {
	if err := s.alerts.Delete(ctx, id); err != nil {
		return ErrAlertNotFound
	}
	return nil
}

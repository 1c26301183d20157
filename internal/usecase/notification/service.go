package notification

import (
	"context"
	"fmt"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// UnreadCounter est implémenté par les dépôts qui tiennent un compteur
// de notifications non lues (voir repository/cached).
type UnreadCounter interface {
	UnreadCount(ctx context.Context) (int, error)
}

// Service - consultation des notifications
type Service struct {
	notificationRepo repository.NotificationRepository
	logger           logger.Logger
}

func NewService(notificationRepo repository.NotificationRepository, logger logger.Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (s *Service) Consulter(ctx context.Context) ([]*domain.Notification, error) {
	return s.notificationRepo.FindAll(ctx)
}

func (s *Service) MarquerCommeLue(ctx context.Context, id int64) (*domain.Notification, error) {
	stored, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notification := stored.WithID(stored.ID())
	notification.SetEstLu(true)

	updated, err := s.notificationRepo.Update(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	s.logger.Info("Notification marked as read", map[string]interface{}{"notification_id": id})
	return updated, nil
}

// NombreNonLues utilise le compteur du dépôt s'il en a un
func (s *Service) NombreNonLues(ctx context.Context) (int, error) {
	if counter, ok := s.notificationRepo.(UnreadCounter); ok {
		return counter.UnreadCount(ctx)
	}

	notifications, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return CountUnread(notifications), nil
}

func CountUnread(notifications []*domain.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.EstLu() {
			count++
		}
	}
	return count
}

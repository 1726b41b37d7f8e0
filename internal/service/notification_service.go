package service

import (
	"context"
	"fmt"

	"gamecharge/internal/model"
	"gamecharge/internal/notifier"
	"gamecharge/internal/repository"

	"github.com/rs/zerolog"
)

// notificationService implements NotificationService.
type notificationService struct {
	notifs   repository.NotificationRepository
	orders   repository.OrderRepository
	whatsapp notifier.Channel
	logger   zerolog.Logger
}

// NewNotificationService creates the notification service.
func NewNotificationService(
	notifs repository.NotificationRepository,
	orders repository.OrderRepository,
	whatsapp notifier.Channel,
	logger zerolog.Logger,
) NotificationService {
	return &notificationService{
		notifs:   notifs,
		orders:   orders,
		whatsapp: whatsapp,
		logger:   logger.With().Str("service", "notification").Logger(),
	}
}

// GetNotificationsByOrderID returns the order's notification log.
func (s *notificationService) GetNotificationsByOrderID(ctx context.Context, orderID int) ([]model.Notification, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return s.notifs.GetNotificationsByOrderID(ctx, orderID)
}

// SendWhatsApp records an ad-hoc WhatsApp message against the order, sends it,
// and marks the record delivered on success. A failed send leaves the record
// with delivered=false and returns the send error.
func (s *notificationService) SendWhatsApp(ctx context.Context, req model.SendWhatsAppRequest) (*model.Notification, error) {
	order, err := s.orders.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	notification, err := s.notifs.CreateNotification(ctx, model.NotificationInsert{
		OrderID: req.OrderID,
		Type:    model.NotificationTypeWhatsApp,
		Content: req.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	msg := notifier.Message{
		Phone: req.PhoneNumber,
		Body:  req.Message,
	}
	if err := s.whatsapp.Send(ctx, msg); err != nil {
		s.logger.Error().
			Err(err).
			Int("notification_id", notification.ID).
			Msg("WhatsApp send failed")
		return nil, fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	delivered, err := s.notifs.MarkNotificationDelivered(ctx, notification.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification delivered: %w", err)
	}
	if delivered == nil {
		return nil, model.ErrNotifNotFound
	}

	s.logger.Info().
		Int("notification_id", delivered.ID).
		Int("order_id", req.OrderID).
		Msg("WhatsApp message delivered")
	return delivered, nil
}

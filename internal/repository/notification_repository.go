package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamecharge/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// notificationRepository implements NotificationRepository using PostgreSQL.
type notificationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewNotificationRepository creates a new PostgreSQL-backed notification repository.
func NewNotificationRepository(pool *pgxpool.Pool, logger zerolog.Logger) NotificationRepository {
	return &notificationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "notification").Logger(),
	}
}

// CreateNotification records a notification attempt with delivered=false.
func (r *notificationRepository) CreateNotification(ctx context.Context, ins model.NotificationInsert) (*model.Notification, error) {
	query := `
		INSERT INTO notifications (order_id, type, content, sent_at, delivered)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id
	`

	now := time.Now()
	var id int
	if err := r.pool.QueryRow(ctx, query, ins.OrderID, ins.Type, ins.Content, now).Scan(&id); err != nil {
		r.logger.Error().Err(err).Int("order_id", ins.OrderID).Msg("failed to create notification")
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	r.logger.Debug().
		Int("notification_id", id).
		Int("order_id", ins.OrderID).
		Str("type", ins.Type).
		Msg("notification created")

	return &model.Notification{
		ID:        id,
		OrderID:   ins.OrderID,
		Type:      ins.Type,
		Content:   ins.Content,
		SentAt:    now,
		Delivered: false,
	}, nil
}

// GetNotificationsByOrderID retrieves an order's notifications in insertion order.
func (r *notificationRepository) GetNotificationsByOrderID(ctx context.Context, orderID int) ([]model.Notification, error) {
	query := `
		SELECT id, order_id, type, content, sent_at, delivered
		FROM notifications
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().Err(err).Int("order_id", orderID).Msg("failed to query notifications")
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var list []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.OrderID, &n.Type, &n.Content, &n.SentAt, &n.Delivered); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return list, nil
}

// MarkNotificationDelivered flips delivered to true, or returns (nil, nil)
// when the notification is absent. Idempotent.
func (r *notificationRepository) MarkNotificationDelivered(ctx context.Context, id int) (*model.Notification, error) {
	query := `
		UPDATE notifications
		SET delivered = true
		WHERE id = $1
		RETURNING id, order_id, type, content, sent_at, delivered
	`

	var n model.Notification
	err := r.pool.QueryRow(ctx, query, id).Scan(&n.ID, &n.OrderID, &n.Type, &n.Content, &n.SentAt, &n.Delivered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("notification_id", id).Msg("notification not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("notification_id", id).Msg("failed to mark notification delivered")
		return nil, fmt.Errorf("failed to mark notification delivered: %w", err)
	}
	return &n, nil
}

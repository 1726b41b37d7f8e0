package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamecharge/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL error code raised on duplicate keys.
const uniqueViolation = "23505"

// orderRepository implements OrderRepository using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	opts   Options
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, opts Options, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		opts:   opts,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `
	id, order_number, user_id, game_id, game_name, price_option_id,
	game_account_id, server_name, customer_phone, notes, amount, price,
	payment_method, payment_status, order_status, created_at, completed_at
`

// CreateOrder inserts a new order. The order number is regenerated on a
// unique-key collision, a bounded number of times.
func (r *orderRepository) CreateOrder(ctx context.Context, ins model.OrderInsert) (*model.Order, error) {
	query := `
		INSERT INTO orders (
			order_number, user_id, game_id, game_name, price_option_id,
			game_account_id, server_name, customer_phone, notes, amount, price,
			payment_method, payment_status, order_status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending', 'pending', $13)
		RETURNING id
	`

	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		now := time.Now()
		number := GenerateOrderNumber(now)

		var id int
		err := r.pool.QueryRow(ctx, query,
			number, ins.UserID, ins.GameID, ins.GameName, ins.PriceOptionID,
			ins.GameAccountID, ins.ServerName, ins.CustomerPhone, ins.Notes,
			ins.Amount, ins.Price, ins.PaymentMethod, now,
		).Scan(&id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				r.logger.Warn().
					Str("order_number", number).
					Int("attempt", attempt+1).
					Msg("order number collision, regenerating")
				lastErr = err
				continue
			}
			r.logger.Error().Err(err).Msg("failed to create order")
			return nil, fmt.Errorf("failed to create order: %w", err)
		}

		order := &model.Order{
			ID:            id,
			OrderNumber:   number,
			UserID:        ins.UserID,
			GameID:        ins.GameID,
			GameName:      ins.GameName,
			PriceOptionID: ins.PriceOptionID,
			GameAccountID: ins.GameAccountID,
			ServerName:    ins.ServerName,
			CustomerPhone: ins.CustomerPhone,
			Notes:         ins.Notes,
			Amount:        ins.Amount,
			Price:         ins.Price,
			PaymentMethod: ins.PaymentMethod,
			PaymentStatus: model.PaymentStatusPending,
			OrderStatus:   model.OrderStatusPending,
			CreatedAt:     now,
		}

		r.logger.Debug().
			Int("order_id", id).
			Str("order_number", number).
			Msg("order created")
		return order, nil
	}

	return nil, fmt.Errorf("failed to create order after %d order number attempts: %w", orderNumberAttempts, lastErr)
}

// GetAllOrders retrieves all orders sorted by createdAt descending.
func (r *orderRepository) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// GetOrderByID retrieves a single order, or (nil, nil) when absent.
func (r *orderRepository) GetOrderByID(ctx context.Context, id int) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.getOrder(ctx, query, id)
}

// GetOrderByNumber retrieves an order by its order number, or (nil, nil) when absent.
func (r *orderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`
	return r.getOrder(ctx, query, orderNumber)
}

// GetOrdersByUserID retrieves a user's orders sorted by createdAt descending.
func (r *orderRepository) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query user orders")
		return nil, fmt.Errorf("failed to query user orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// UpdateOrderStatus sets both status axes and maintains completedAt in one
// statement, so concurrent updates cannot interleave between read and write.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id int, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus) (*model.Order, error) {
	query := `
		UPDATE orders
		SET order_status = $2,
		    payment_status = $3,
		    completed_at = CASE
		        WHEN $2 <> 'completed' THEN completed_at
		        WHEN $4::boolean AND completed_at IS NOT NULL THEN completed_at
		        ELSE now()
		    END
		WHERE id = $1
		RETURNING ` + orderColumns

	row := r.pool.QueryRow(ctx, query, id, orderStatus, paymentStatus, r.opts.CompletedAtSetOnce)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("order_id", id).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	r.logger.Debug().
		Int("order_id", id).
		Str("order_status", string(orderStatus)).
		Str("payment_status", string(paymentStatus)).
		Msg("order status updated")
	return order, nil
}

func (r *orderRepository) getOrder(ctx context.Context, query string, arg any) (*model.Order, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	return order, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.GameID, &o.GameName,
		&o.PriceOptionID, &o.GameAccountID, &o.ServerName, &o.CustomerPhone,
		&o.Notes, &o.Amount, &o.Price, &o.PaymentMethod, &o.PaymentStatus,
		&o.OrderStatus, &o.CreatedAt, &o.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var orders []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}

package service

import (
	"context"
	"fmt"

	"gamecharge/internal/model"
	"gamecharge/internal/notifier"
	"gamecharge/internal/repository"
	"gamecharge/internal/ws"

	"github.com/rs/zerolog"
)

const fallbackCustomerName = "عميلنا العزيز"

// orderService implements OrderService.
type orderService struct {
	orders      repository.OrderRepository
	games       repository.GameRepository
	options     repository.PriceOptionRepository
	users       repository.UserRepository
	notifs      repository.NotificationRepository
	dispatcher  *notifier.Manager
	broadcaster Broadcaster
	logger      zerolog.Logger
}

// NewOrderService creates the order service.
func NewOrderService(
	orders repository.OrderRepository,
	games repository.GameRepository,
	options repository.PriceOptionRepository,
	users repository.UserRepository,
	notifs repository.NotificationRepository,
	dispatcher *notifier.Manager,
	broadcaster Broadcaster,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orders:      orders,
		games:       games,
		options:     options,
		users:       users,
		notifs:      notifs,
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder validates the catalog references, snapshots the game name,
// amount and price from the selected price option, and records the order with
// both status axes pending. The confirmation notification and the new_order
// event are side effects of a successful create.
func (s *orderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	game, err := s.games.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	if game == nil {
		return nil, model.ErrGameNotFound
	}

	option, err := s.options.GetPriceOptionByID(ctx, req.PriceOptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load price option: %w", err)
	}
	if option == nil || option.GameID != game.ID {
		return nil, model.ErrPriceOptionNotFound
	}

	ins := model.OrderInsert{
		UserID:        req.UserID,
		GameID:        game.ID,
		GameName:      game.Name,
		PriceOptionID: option.ID,
		GameAccountID: req.GameAccountID,
		ServerName:    req.ServerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		Amount:        option.Amount,
		Price:         option.Price,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
	}

	order, err := s.orders.CreateOrder(ctx, ins)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Str("game", order.GameName).
		Msg("order created")

	content := notifier.RenderOrderCreated(s.customerName(ctx, order.UserID), order.OrderNumber)
	s.record(ctx, order.ID, model.NotificationTypeOrderCreated, content)
	s.broadcaster.Broadcast(ws.EventNewOrder, order)
	s.dispatch(ctx, order, content)

	return order, nil
}

// GetAllOrders retrieves all orders, newest first.
func (s *orderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.GetAllOrders(ctx)
}

// GetOrderByID retrieves a single order.
func (s *orderService) GetOrderByID(ctx context.Context, id int) (*model.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// GetOrderByNumber retrieves a single order by its human-facing number.
func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	order, err := s.orders.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// GetOrdersByUserID retrieves a user's order history, newest first.
func (s *orderService) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orders.GetOrdersByUserID(ctx, userID)
}

// UpdateOrderStatus sets both status axes, logs a status-update notification
// and pushes the order_updated event. Any transition between valid statuses is
// accepted.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id int, req model.OrderStatusUpdateRequest) (*model.Order, error) {
	order, err := s.orders.UpdateOrderStatus(ctx, id,
		model.OrderStatus(req.OrderStatus),
		model.PaymentStatus(req.PaymentStatus),
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Int("order_id", order.ID).
		Str("order_status", req.OrderStatus).
		Str("payment_status", req.PaymentStatus).
		Msg("order status updated")

	content := notifier.RenderStatusUpdate(s.customerName(ctx, order.UserID), order.OrderNumber, req.OrderStatus)
	s.record(ctx, order.ID, model.NotificationTypeOrderStatusUpdate, content)
	s.broadcaster.Broadcast(ws.EventOrderUpdated, order)
	s.dispatch(ctx, order, content)

	return order, nil
}

// record appends a notification to the order's log. Failures are logged, not
// propagated; the order change already happened.
func (s *orderService) record(ctx context.Context, orderID int, notifType, content string) {
	if _, err := s.notifs.CreateNotification(ctx, model.NotificationInsert{
		OrderID: orderID,
		Type:    notifType,
		Content: content,
	}); err != nil {
		s.logger.Error().Err(err).Int("order_id", orderID).Msg("failed to record notification")
	}
}

// dispatch fans the message out to the delivery channels without blocking the
// request. The detached context outlives the HTTP request that triggered it.
func (s *orderService) dispatch(ctx context.Context, order *model.Order, content string) {
	msg := notifier.Message{
		Phone:   order.CustomerPhone,
		Email:   s.customerEmail(ctx, order.UserID),
		Subject: fmt.Sprintf("تحديث طلبك #%s", order.OrderNumber),
		Body:    content,
	}

	go func() {
		s.dispatcher.Dispatch(context.WithoutCancel(ctx), msg)
	}()
}

func (s *orderService) customerName(ctx context.Context, userID string) string {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		return fallbackCustomerName
	}
	return user.Username
}

func (s *orderService) customerEmail(ctx context.Context, userID string) string {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil || user == nil || user.Email == nil {
		return ""
	}
	return *user.Email
}

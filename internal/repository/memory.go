package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gamecharge/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Memory is the in-process implementation of every repository interface.
// It is the production default: records live in maps guarded by a single
// RWMutex and are lost on restart. Cross-entity rules (game deletion blocked
// by referencing orders) are enforced here because all maps share one lock.
type Memory struct {
	opts   Options
	logger zerolog.Logger

	mu            sync.RWMutex
	games         map[int]model.Game
	priceOptions  map[int]model.PriceOption
	orders        map[int]model.Order
	notifications map[int]model.Notification
	users         map[string]model.User
	admins        map[int]model.AdminUser
	settings      model.SiteSettings

	nextGameID         int
	nextPriceOptionID  int
	nextOrderID        int
	nextNotificationID int
	nextAdminID        int
}

// NewMemory creates an empty in-memory store with default site settings.
func NewMemory(opts Options, logger zerolog.Logger) *Memory {
	return &Memory{
		opts:               opts,
		logger:             logger.With().Str("repository", "memory").Logger(),
		games:              make(map[int]model.Game),
		priceOptions:       make(map[int]model.PriceOption),
		orders:             make(map[int]model.Order),
		notifications:      make(map[int]model.Notification),
		users:              make(map[string]model.User),
		admins:             make(map[int]model.AdminUser),
		settings:           defaultSettings(),
		nextGameID:         1,
		nextPriceOptionID:  1,
		nextOrderID:        1,
		nextNotificationID: 1,
		nextAdminID:        1,
	}
}

// --- games ---

func (m *Memory) GetGames(ctx context.Context) ([]model.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	games := make([]model.Game, 0, len(m.games))
	for _, g := range m.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (m *Memory) GetGame(ctx context.Context, id int) (*model.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.games[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (m *Memory) CreateGame(ctx context.Context, req model.CreateGameRequest) (*model.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := model.Game{
		ID:          m.nextGameID,
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}
	m.nextGameID++
	m.games[g.ID] = g

	m.logger.Debug().Int("game_id", g.ID).Str("name", g.Name).Msg("game created")
	return &g, nil
}

func (m *Memory) UpdateGame(ctx context.Context, id int, req model.UpdateGameRequest) (*model.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.ImageURL != nil {
		g.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	m.games[id] = g
	return &g, nil
}

func (m *Memory) DeleteGame(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[id]; !ok {
		return model.ErrGameNotFound
	}

	// Orders snapshot the game name but keep the foreign key; the game stays
	// while any order references it.
	for _, o := range m.orders {
		if o.GameID == id {
			return model.ErrGameHasOrders
		}
	}

	for optID, opt := range m.priceOptions {
		if opt.GameID == id {
			delete(m.priceOptions, optID)
		}
	}
	delete(m.games, id)

	m.logger.Debug().Int("game_id", id).Msg("game deleted")
	return nil
}

// --- price options ---

func (m *Memory) GetAllPriceOptions(ctx context.Context) ([]model.PriceOption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	options := make([]model.PriceOption, 0, len(m.priceOptions))
	for _, opt := range m.priceOptions {
		options = append(options, opt)
	}
	sort.Slice(options, func(i, j int) bool { return options[i].ID < options[j].ID })
	return options, nil
}

func (m *Memory) GetPriceOptionsByGameID(ctx context.Context, gameID int) ([]model.PriceOption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var options []model.PriceOption
	for _, opt := range m.priceOptions {
		if opt.GameID == gameID {
			options = append(options, opt)
		}
	}
	sort.Slice(options, func(i, j int) bool { return options[i].ID < options[j].ID })
	return options, nil
}

func (m *Memory) GetPriceOptionByID(ctx context.Context, id int) (*model.PriceOption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	opt, ok := m.priceOptions[id]
	if !ok {
		return nil, nil
	}
	return &opt, nil
}

func (m *Memory) CreatePriceOption(ctx context.Context, req model.CreatePriceOptionRequest) (*model.PriceOption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	opt := model.PriceOption{
		ID:          m.nextPriceOptionID,
		GameID:      req.GameID,
		Currency:    req.Currency,
		Amount:      req.Amount,
		Price:       req.Price,
		Description: req.Description,
	}
	m.nextPriceOptionID++
	m.priceOptions[opt.ID] = opt
	return &opt, nil
}

func (m *Memory) UpdatePriceOption(ctx context.Context, id int, req model.UpdatePriceOptionRequest) (*model.PriceOption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	opt, ok := m.priceOptions[id]
	if !ok {
		return nil, model.ErrPriceOptionNotFound
	}

	if req.GameID != nil {
		opt.GameID = *req.GameID
	}
	if req.Currency != nil {
		opt.Currency = *req.Currency
	}
	if req.Amount != nil {
		opt.Amount = *req.Amount
	}
	if req.Price != nil {
		opt.Price = *req.Price
	}
	if req.Description != nil {
		opt.Description = req.Description
	}
	m.priceOptions[id] = opt
	return &opt, nil
}

func (m *Memory) DeletePriceOption(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.priceOptions[id]; !ok {
		return model.ErrPriceOptionNotFound
	}
	delete(m.priceOptions, id)
	return nil
}

// --- orders ---

func (m *Memory) CreateOrder(ctx context.Context, ins model.OrderInsert) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	// The time+random number scheme can collide within a millisecond, so
	// re-roll against existing records a bounded number of times. After the
	// last attempt the candidate is accepted as-is.
	number := GenerateOrderNumber(now)
	for i := 1; i < orderNumberAttempts && m.orderNumberTakenLocked(number); i++ {
		number = GenerateOrderNumber(time.Now())
	}

	o := model.Order{
		ID:            m.nextOrderID,
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
		CompletedAt:   nil,
	}
	m.nextOrderID++
	m.orders[o.ID] = o

	m.logger.Debug().
		Int("order_id", o.ID).
		Str("order_number", o.OrderNumber).
		Msg("order created")
	return &o, nil
}

func (m *Memory) orderNumberTakenLocked(number string) bool {
	for _, o := range m.orders {
		if o.OrderNumber == number {
			return true
		}
	}
	return false
}

func (m *Memory) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]model.Order, 0, len(m.orders))
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	sortOrdersByCreatedAtDesc(orders)
	return orders, nil
}

func (m *Memory) GetOrderByID(ctx context.Context, id int) (*model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *Memory) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			return &o, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var orders []model.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sortOrdersByCreatedAtDesc(orders)
	return orders, nil
}

func (m *Memory) UpdateOrderStatus(ctx context.Context, id int, orderStatus model.OrderStatus, paymentStatus model.PaymentStatus) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}

	o.OrderStatus = orderStatus
	o.PaymentStatus = paymentStatus

	if orderStatus == model.OrderStatusCompleted {
		if !m.opts.CompletedAtSetOnce || o.CompletedAt == nil {
			now := time.Now()
			o.CompletedAt = &now
		}
	}

	m.orders[id] = o

	m.logger.Debug().
		Int("order_id", id).
		Str("order_status", string(orderStatus)).
		Str("payment_status", string(paymentStatus)).
		Msg("order status updated")
	return &o, nil
}

func sortOrdersByCreatedAtDesc(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// --- notifications ---

func (m *Memory) CreateNotification(ctx context.Context, ins model.NotificationInsert) (*model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := model.Notification{
		ID:        m.nextNotificationID,
		OrderID:   ins.OrderID,
		Type:      ins.Type,
		Content:   ins.Content,
		SentAt:    time.Now(),
		Delivered: false,
	}
	m.nextNotificationID++
	m.notifications[n.ID] = n
	return &n, nil
}

func (m *Memory) GetNotificationsByOrderID(ctx context.Context, orderID int) ([]model.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var list []model.Notification
	for _, n := range m.notifications {
		if n.OrderID == orderID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *Memory) MarkNotificationDelivered(ctx context.Context, id int) (*model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notifications[id]
	if !ok {
		return nil, nil
	}
	n.Delivered = true
	m.notifications[id] = n
	return &n, nil
}

// --- users ---

func (m *Memory) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *Memory) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email != nil && *u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Phone != nil && *u.Phone == phone {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetAllUsers(ctx context.Context) ([]model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (m *Memory) CreateUser(ctx context.Context, u model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.users[u.ID] = u
	return &u, nil
}

// --- admins ---

func (m *Memory) GetAdminByID(ctx context.Context, id int) (*model.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.admins[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *Memory) GetAdminByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.admins {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetAllAdmins(ctx context.Context) ([]model.AdminUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	admins := make([]model.AdminUser, 0, len(m.admins))
	for _, a := range m.admins {
		admins = append(admins, a)
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i].ID < admins[j].ID })
	return admins, nil
}

func (m *Memory) CreateAdmin(ctx context.Context, a model.AdminUser) (*model.AdminUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a.ID = m.nextAdminID
	m.nextAdminID++
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	m.admins[a.ID] = a
	return &a, nil
}

func (m *Memory) UpdateLastLogin(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.admins[id]
	if !ok {
		return model.ErrUserNotFound
	}
	now := time.Now()
	a.LastLogin = &now
	m.admins[id] = a
	return nil
}

// --- settings ---

func (m *Memory) GetSettings(ctx context.Context) (model.SiteSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

func (m *Memory) UpdateSettings(ctx context.Context, upd model.SettingsUpdate) (model.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.settings
	if upd.SiteName != nil {
		s.SiteName = *upd.SiteName
	}
	if upd.PrimaryColor != nil {
		s.PrimaryColor = *upd.PrimaryColor
	}
	if upd.SecondaryColor != nil {
		s.SecondaryColor = *upd.SecondaryColor
	}
	if upd.Logo != nil {
		s.Logo = upd.Logo
	}
	if upd.Hero != nil {
		s.Hero = upd.Hero
	}
	if upd.Background != nil {
		s.Background = upd.Background
	}
	if upd.ContactEmail != nil {
		s.ContactEmail = upd.ContactEmail
	}
	if upd.ContactPhone != nil {
		s.ContactPhone = upd.ContactPhone
	}
	if upd.WhatsAppNumber != nil {
		s.WhatsAppNumber = upd.WhatsAppNumber
	}
	if upd.FooterText != nil {
		s.FooterText = upd.FooterText
	}
	if upd.EnableRegistration != nil {
		s.EnableRegistration = *upd.EnableRegistration
	}
	if upd.EnableVerification != nil {
		s.EnableVerification = *upd.EnableVerification
	}
	s.UpdatedAt = time.Now()
	m.settings = s
	return s, nil
}

func defaultSettings() model.SiteSettings {
	contactEmail := "contact@gamecharge.example"
	contactPhone := "+201234567890"
	whatsapp := "+201234567890"
	footer := "جميع الحقوق محفوظة © GameCharge"

	return model.SiteSettings{
		ID:                 1,
		SiteName:           "GameCharge",
		PrimaryColor:       "#6200ea",
		SecondaryColor:     "#00b8d4",
		ContactEmail:       &contactEmail,
		ContactPhone:       &contactPhone,
		WhatsAppNumber:     &whatsapp,
		FooterText:         &footer,
		EnableRegistration: true,
		EnableVerification: false,
		UpdatedAt:          time.Now(),
	}
}

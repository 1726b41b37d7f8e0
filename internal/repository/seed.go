package repository

import (
	"context"
	"fmt"
	"time"

	"gamecharge/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// Demo account IDs are fixed so that client fixtures stay stable across restarts.
const (
	seedAdminUserID   = "admin-uuid-12345678-fixed-id"
	seedAhmedUserID   = "ahmed-uuid-12345678-fixed-id"
	seedMohamedUserID = "mohamed-uuid-12345678-fixed-id"
	seedSaraUserID    = "sara-uuid-12345678-fixed-id"
)

// Seed populates an empty in-memory store with the demo catalog, accounts and
// a handful of historical orders. Only meant for the memory backend.
func Seed(m *Memory) error {
	ctx := context.Background()

	if err := seedAccounts(ctx, m); err != nil {
		return err
	}
	if err := seedCatalog(ctx, m); err != nil {
		return err
	}
	return seedOrders(ctx, m)
}

func seedAccounts(ctx context.Context, m *Memory) error {
	if _, err := m.CreateAdmin(ctx, model.AdminUser{
		Username: "admin",
		Password: mustHash("admin123"),
		Name:     "محمود باسم",
		Role:     model.AdminRoleAdmin,
	}); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	users := []struct {
		id       string
		username string
		password string
		email    string
		phone    string
	}{
		{seedAhmedUserID, "ahmed123", "password123", "ahmed@example.com", "+201012345678"},
		{seedMohamedUserID, "mohamed456", "password456", "mohamed@example.com", "+201123456789"},
		{seedSaraUserID, "sara789", "password789", "sara@example.com", "+201234567890"},
	}

	for _, u := range users {
		email, phone := u.email, u.phone
		if _, err := m.CreateUser(ctx, model.User{
			ID:         u.id,
			Username:   u.username,
			Password:   mustHash(u.password),
			Email:      &email,
			Phone:      &phone,
			IsVerified: true,
		}); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, m *Memory) error {
	type pkg struct {
		currency    string
		amount      int
		price       float64
		description string
	}
	games := []struct {
		name        string
		imageURL    string
		description string
		packages    []pkg
	}{
		{
			name:        "PUBG Mobile",
			imageURL:    "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=500&h=300&fit=crop",
			description: "شحن UC | متوفر جميع الفئات",
			packages: []pkg{
				{"UC", 60, 15, "باقة مبتدئين"},
				{"UC", 180, 40, "باقة أساسية"},
				{"UC", 325, 70, "باقة متوسطة"},
				{"UC", 660, 140, "باقة كبيرة"},
				{"UC", 1800, 350, "باقة محترفين"},
				{"UC", 3850, 700, "باقة رويال"},
			},
		},
		{
			name:        "Fortnite",
			imageURL:    "https://images.unsplash.com/photo-1580327344181-c1163234e5a0?w=500&h=300&fit=crop",
			description: "شحن V-Bucks | جميع المنصات",
			packages: []pkg{
				{"V-Bucks", 1000, 90, "باقة أساسية"},
				{"V-Bucks", 2800, 230, "باقة متوسطة"},
				{"V-Bucks", 5000, 400, "باقة كبيرة"},
			},
		},
		{
			name:        "Free Fire",
			imageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=500&h=300&fit=crop",
			description: "شحن الجواهر | عروض خاصة",
			packages: []pkg{
				{"Diamonds", 100, 20, "باقة مبتدئين"},
				{"Diamonds", 310, 60, "باقة متوسطة"},
				{"Diamonds", 520, 100, "باقة كبيرة"},
			},
		},
		{
			name:        "Call of Duty Mobile",
			imageURL:    "https://images.unsplash.com/photo-1486572788966-cfd3df1f5b42?w=500&h=300&fit=crop",
			description: "شحن CP | خصومات حصرية",
			packages: []pkg{
				{"CP", 400, 70, "باقة أساسية"},
				{"CP", 800, 130, "باقة متوسطة"},
				{"CP", 2000, 300, "باقة كبيرة"},
			},
		},
	}

	for _, g := range games {
		game, err := m.CreateGame(ctx, model.CreateGameRequest{
			Name:        g.name,
			ImageURL:    g.imageURL,
			Description: g.description,
		})
		if err != nil {
			return fmt.Errorf("failed to seed game %s: %w", g.name, err)
		}

		for _, p := range g.packages {
			desc := p.description
			if _, err := m.CreatePriceOption(ctx, model.CreatePriceOptionRequest{
				GameID:      game.ID,
				Currency:    p.currency,
				Amount:      p.amount,
				Price:       p.price,
				Description: &desc,
			}); err != nil {
				return fmt.Errorf("failed to seed price option for %s: %w", g.name, err)
			}
		}
	}
	return nil
}

func seedOrders(ctx context.Context, m *Memory) error {
	type demo struct {
		userID        string
		gameID        int
		accountID     string
		serverName    string
		notes         string
		paymentMethod model.PaymentMethod
		orderStatus   model.OrderStatus
		paymentStatus model.PaymentStatus
		ageDays       int
	}
	demos := []demo{
		{seedAhmedUserID, 1, "PUBG-12345", "Asia", "شحن سريع من فضلك", model.PaymentMethodVodafoneCash, model.OrderStatusCompleted, model.PaymentStatusPaid, 5},
		{seedAhmedUserID, 1, "PUBG-12345", "Asia", "", model.PaymentMethodInstaPay, model.OrderStatusCompleted, model.PaymentStatusPaid, 2},
		{seedMohamedUserID, 2, "Fortnite-67890", "Europe", "إرسال رمز التفعيل على الواتساب", model.PaymentMethodBankTransfer, model.OrderStatusPending, model.PaymentStatusPending, 1},
		{seedSaraUserID, 4, "COD-54321", "Global", "", model.PaymentMethodVodafoneCash, model.OrderStatusCompleted, model.PaymentStatusPaid, 7},
		{seedSaraUserID, 3, "FF-98765", "Middle East", "تم إلغاء الطلب بناءً على طلب العميل", model.PaymentMethodInstaPay, model.OrderStatusCancelled, model.PaymentStatusFailed, 3},
	}

	for _, d := range demos {
		game, err := m.GetGame(ctx, d.gameID)
		if err != nil || game == nil {
			return fmt.Errorf("seed order references missing game %d", d.gameID)
		}
		options, err := m.GetPriceOptionsByGameID(ctx, d.gameID)
		if err != nil || len(options) == 0 {
			return fmt.Errorf("seed order references game %d without price options", d.gameID)
		}
		opt := options[0]

		user, err := m.GetUserByID(ctx, d.userID)
		if err != nil || user == nil {
			return fmt.Errorf("seed order references missing user %s", d.userID)
		}

		var phone string
		if user.Phone != nil {
			phone = *user.Phone
		}

		ins := model.OrderInsert{
			UserID:        d.userID,
			GameID:        game.ID,
			GameName:      game.Name,
			PriceOptionID: opt.ID,
			GameAccountID: d.accountID,
			CustomerPhone: phone,
			Amount:        opt.Amount,
			Price:         opt.Price,
			PaymentMethod: d.paymentMethod,
		}
		if d.serverName != "" {
			server := d.serverName
			ins.ServerName = &server
		}
		if d.notes != "" {
			notes := d.notes
			ins.Notes = &notes
		}

		order, err := m.CreateOrder(ctx, ins)
		if err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}

		if d.orderStatus != model.OrderStatusPending || d.paymentStatus != model.PaymentStatusPending {
			if _, err := m.UpdateOrderStatus(ctx, order.ID, d.orderStatus, d.paymentStatus); err != nil {
				return fmt.Errorf("failed to seed order status: %w", err)
			}
		}

		// Backdate so the admin dashboard shows a believable history.
		m.mu.Lock()
		o := m.orders[order.ID]
		o.CreatedAt = time.Now().Add(-time.Duration(d.ageDays) * 24 * time.Hour)
		m.orders[order.ID] = o
		m.mu.Unlock()
	}
	return nil
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// internal/database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopora/storefront-backend/internal/models"
)

func price(v float64) *float64 { return &v }

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Description:   "Experience crystal-clear audio with our premium wireless headphones. Features active noise cancellation, 30-hour battery life, and ultra-comfortable ear cushions.",
			Price:         299.99,
			OriginalPrice: price(399.99),
			Category:      "Electronics",
			Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&q=80",
			Stock:         45,
			Rating:        4.8,
			ReviewCount:   234,
			Tags:          pq.StringArray{"wireless", "noise-cancelling", "premium"},
			CreatedAt:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "2",
			Name:          "Minimalist Leather Watch",
			Description:   "Elegant timepiece crafted from genuine Italian leather. Water-resistant up to 50m with sapphire crystal glass.",
			Price:         189.99,
			OriginalPrice: price(249.99),
			Category:      "Accessories",
			Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&q=80",
			Stock:         28,
			Rating:        4.6,
			ReviewCount:   156,
			Tags:          pq.StringArray{"leather", "minimalist", "luxury"},
			CreatedAt:     time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "3",
			Name:          "Smart Fitness Tracker",
			Description:   "Track your health metrics with precision. Heart rate monitoring, sleep tracking, GPS, and 7-day battery life.",
			Price:         149.99,
			OriginalPrice: price(199.99),
			Category:      "Electronics",
			Image:         "https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?w=500&q=80",
			Stock:         67,
			Rating:        4.5,
			ReviewCount:   389,
			Tags:          pq.StringArray{"fitness", "health", "smart"},
			CreatedAt:     time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "4",
			Name:          "Artisan Coffee Maker",
			Description:   "Brew barista-quality coffee at home. Programmable settings, built-in grinder, and thermal carafe included.",
			Price:         249.99,
			OriginalPrice: price(329.99),
			Category:      "Home & Kitchen",
			Image:         "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=500&q=80",
			Stock:         19,
			Rating:        4.7,
			ReviewCount:   178,
			Tags:          pq.StringArray{"coffee", "kitchen", "premium"},
			CreatedAt:     time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "5",
			Name:          "Ultralight Running Shoes",
			Description:   "Engineered for performance. Carbon fiber plate, responsive foam, and breathable mesh upper for maximum speed.",
			Price:         179.99,
			OriginalPrice: price(229.99),
			Category:      "Sports",
			Image:         "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&q=80",
			Stock:         52,
			Rating:        4.9,
			ReviewCount:   512,
			Tags:          pq.StringArray{"running", "performance", "lightweight"},
			CreatedAt:     time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "6",
			Name:          "Portable Bluetooth Speaker",
			Description:   "360° surround sound in a compact design. IPX7 waterproof, 24-hour playtime, and built-in microphone.",
			Price:         89.99,
			OriginalPrice: price(119.99),
			Category:      "Electronics",
			Image:         "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&q=80",
			Stock:         83,
			Rating:        4.4,
			ReviewCount:   267,
			Tags:          pq.StringArray{"bluetooth", "portable", "waterproof"},
			CreatedAt:     time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "7",
			Name:          "Organic Skincare Set",
			Description:   "Complete skincare routine with 100% organic ingredients. Cleanser, toner, serum, and moisturizer included.",
			Price:         129.99,
			OriginalPrice: price(169.99),
			Category:      "Beauty",
			Image:         "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=500&q=80",
			Stock:         34,
			Rating:        4.6,
			ReviewCount:   198,
			Tags:          pq.StringArray{"organic", "skincare", "natural"},
			CreatedAt:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "8",
			Name:          "Ergonomic Office Chair",
			Description:   "Designed for all-day comfort. Lumbar support, adjustable armrests, breathable mesh back, and 5-year warranty.",
			Price:         449.99,
			OriginalPrice: price(599.99),
			Category:      "Furniture",
			Image:         "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=500&q=80",
			Stock:         12,
			Rating:        4.8,
			ReviewCount:   143,
			Tags:          pq.StringArray{"ergonomic", "office", "comfort"},
			CreatedAt:     time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		},
	}
}

// SeedCatalog inserts the demo catalog when the products table is empty.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := seedProducts()
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	logrus.WithField("count", len(products)).Info("Seeded demo catalog")
	return nil
}

// SeedUsers builds the demo user directory for the auth store's first run.
// Passwords are hashed here; the plaintext values exist only for demo logins.
func SeedUsers(adminEmail string) ([]models.User, error) {
	seed := []struct {
		id       string
		name     string
		email    string
		password string
		role     models.Role
		avatar   string
		created  time.Time
	}{
		{"admin-1", "Store Admin", adminEmail, "admin123", models.RoleAdmin,
			"https://api.dicebear.com/7.x/avataaars/svg?seed=admin", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"user-1", "Sarah Johnson", "sarah@example.com", "user123", models.RoleUser,
			"https://api.dicebear.com/7.x/avataaars/svg?seed=sarah", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"user-2", "Michael Chen", "michael@example.com", "user123", models.RoleUser,
			"https://api.dicebear.com/7.x/avataaars/svg?seed=michael", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"user-3", "Emma Wilson", "emma@example.com", "user123", models.RoleUser,
			"https://api.dicebear.com/7.x/avataaars/svg?seed=emma", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	users := make([]models.User, 0, len(seed))
	for _, s := range seed {
		u := models.User{
			ID:        s.id,
			Name:      s.name,
			Email:     s.email,
			Role:      s.role,
			Avatar:    s.avatar,
			CreatedAt: s.created,
		}
		if err := u.SetPassword(s.password); err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

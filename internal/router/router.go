// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shopora/storefront-backend/internal/config"
	"github.com/shopora/storefront-backend/internal/database"
	"github.com/shopora/storefront-backend/internal/handlers"
	"github.com/shopora/storefront-backend/internal/middleware"
	"github.com/shopora/storefront-backend/internal/models"
	"github.com/shopora/storefront-backend/internal/persist"
	"github.com/shopora/storefront-backend/internal/services"
	"github.com/shopora/storefront-backend/internal/store"
	"github.com/shopora/storefront-backend/internal/utils"
)

func Initialize(db *gorm.DB, snapshots persist.Store, cfg *config.Config, log *logrus.Logger) *gin.Engine {
	// Initialize stores
	var seed []models.User
	if cfg.Storefront.Seed {
		var err error
		if seed, err = database.SeedUsers(cfg.Storefront.AdminEmail); err != nil {
			log.WithError(err).Warn("Failed to build seed user directory")
		}
	}
	auth := store.NewAuth(cfg.Storefront.AdminEmail, seed, snapshots, log)
	carts := store.NewCartManager(snapshots, log)
	wishlist := store.NewWishlist(snapshots, log)
	reviews := store.NewReviews(snapshots, log)
	orders := store.NewOrders(snapshots, log)

	// Initialize services
	catalogService := services.NewCatalogService(db)
	checkoutDelay := time.Duration(cfg.Storefront.CheckoutDelayMS) * time.Millisecond
	checkoutService := services.NewCheckoutService(carts, orders, checkoutDelay, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(auth, cfg.JWT.AccessTokenTTL)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(carts, catalogService, checkoutService)
	wishlistHandler := handlers.NewWishlistHandler(wishlist, catalogService)
	reviewHandler := handlers.NewReviewHandler(reviews, catalogService, auth)
	orderHandler := handlers.NewOrderHandler(orders)
	adminHandler := handlers.NewAdminHandler(auth, reviews, orders, catalogService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		authRoutes := v1.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimit())
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			authRoutes.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)
			products.GET("/:id/reviews", reviewHandler.GetProductReviews)
			products.POST("/:id/reviews", middleware.AuthRequired(), reviewHandler.CreateReview)

			// Catalog mutations are admin-only
			managed := products.Group("")
			managed.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				managed.POST("", productHandler.CreateProduct)
				managed.PUT("/:id", productHandler.UpdateProduct)
				managed.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productId", cartHandler.UpdateItem)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
			cart.POST("/checkout", cartHandler.Checkout)
		}

		// Wishlist routes
		wishlistRoutes := v1.Group("/wishlist")
		wishlistRoutes.Use(middleware.AuthRequired())
		{
			wishlistRoutes.GET("", wishlistHandler.GetWishlist)
			wishlistRoutes.DELETE("", wishlistHandler.Clear)
			wishlistRoutes.POST("/toggle", wishlistHandler.Toggle)
			wishlistRoutes.DELETE("/:productId", wishlistHandler.Remove)
		}

		// Order routes
		orderRoutes := v1.Group("/orders")
		orderRoutes.Use(middleware.AuthRequired())
		{
			orderRoutes.GET("", orderHandler.GetOrders)
			orderRoutes.GET("/:id", orderHandler.GetOrder)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard", adminHandler.GetDashboardStats)

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", adminHandler.GetUsers)
				adminUsers.POST("", adminHandler.CreateUser)
				adminUsers.PUT("/:id", adminHandler.UpdateUser)
				adminUsers.DELETE("/:id", adminHandler.DeleteUser)
			}

			admin.GET("/products/export", adminHandler.ExportProducts)

			adminReviews := admin.Group("/reviews")
			{
				adminReviews.GET("", adminHandler.GetReviews)
				adminReviews.DELETE("/:id", adminHandler.DeleteReview)
			}

			adminOrders := admin.Group("/orders")
			{
				adminOrders.GET("", adminHandler.GetOrders)
			}
		}
	}

	return r
}

package main

import (
	"context"                        // Context for startup operations
	"log"                            // log package is needed for logging
	"mini_store/internal/api"        // Custom package for API handlers
	"mini_store/internal/config"     // Custom package for configuration
	"mini_store/internal/domain"     // Custom package for domain models
	"mini_store/internal/middleware" // Custom package for middleware
	"mini_store/internal/service"    // Custom package for services
	"mini_store/internal/session"    // Custom package for the workflow session
	"mini_store/internal/store"      // Custom package for persistence backends
	"mini_store/internal/utils"      // Custom package for cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx := context.Background()

	// Select the persistence backend once at startup. A configured MongoDB
	// URI that cannot be reached is fatal; only an absent URI falls back to
	// the in-memory backend.
	var st store.Store
	if cfg.MongoURI != "" {
		mongoStore, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			logrus.Fatalf("failed to connect to MongoDB: %v", err) // Fatal error if DB connection fails
		}
		st = mongoStore
		logrus.Info("Using MongoDB backend")
	} else {
		st = store.NewMemoryStore()
		logrus.Warn("MONGODB_URI not set, using in-memory backend; data will not survive a restart")
	}
	defer st.Close(ctx)

	// Setup Redis when configured; it backs the session store and the
	// product-list cache. Without it sessions live in process memory.
	var cache *utils.Cache
	var sessions session.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = utils.NewCache(rdb)
		sessions = session.NewRedisStore(rdb)
	} else {
		sessions = session.NewMemoryStore()
	}

	// Wire the services and the workflow controller over the backend
	accounts := service.NewAccountService(st)
	catalog := service.NewCatalogService(st)
	orders := service.NewOrderService(st)
	ctrl := session.NewController(accounts, catalog, orders)

	// Bootstrap the admin account once during setup; idempotent
	if err := accounts.BootstrapAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.Fatalf("failed to bootstrap admin account: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(accounts))                                         // Registration endpoint
	r.POST("/login/user", api.LoginHandler(ctrl, sessions, cfg.JWTSecret, domain.RoleUser))   // User login endpoint
	r.POST("/login/admin", api.LoginHandler(ctrl, sessions, cfg.JWTSecret, domain.RoleAdmin)) // Admin login endpoint
	r.POST("/logout", middleware.JWTAuthMiddleware(cfg.JWTSecret), api.LogoutHandler(sessions)) // Logout endpoint

	// Storefront routes (protected by JWT, user role only)
	storeGroup := r.Group("/")
	storeGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRoleMiddleware(st, domain.RoleUser))
	storeGroup.GET("/products", api.ListProductsHandler(catalog, cache)) // Product list endpoint
	storeGroup.POST("/cart/items", api.AddToCartHandler(ctrl, sessions)) // Add to cart endpoint
	storeGroup.GET("/cart", api.GetCartHandler(sessions))                // View cart endpoint
	storeGroup.DELETE("/cart", api.ClearCartHandler(sessions))           // Clear cart endpoint
	storeGroup.POST("/orders", api.PlaceOrderHandler(ctrl, sessions))    // Place order endpoint
	storeGroup.GET("/orders", api.ListOrdersHandler(orders))             // Order history endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRoleMiddleware(st, domain.RoleAdmin))
	adminGroup.POST("/users", api.CreateUserHandler(accounts))               // Create user endpoint
	adminGroup.POST("/products", api.CreateProductHandler(catalog, cache))     // Add product endpoint
	adminGroup.GET("/products", api.ListProductsHandler(catalog, cache))       // Product list endpoint
	adminGroup.GET("/orders", api.ListAllOrdersHandler(orders))              // All orders endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

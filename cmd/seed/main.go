package main

import (
	"context"                     // Context for database operations
	"mini_store/internal/config"  // Custom import path (Config)
	"mini_store/internal/service" // Custom import path (Account service)
	"mini_store/internal/store"   // Custom import path (Persistence backends)

	"github.com/sirupsen/logrus"
)

// Main entry point for seeding: ensures the username unique index and the
// bootstrap admin account exist in MongoDB.
func main() {
	cfg := config.LoadConfig() // Load configuration

	if cfg.MongoURI == "" {
		logrus.Fatal("MONGODB_URI is required for seeding") // Nothing to seed without a database
	}

	ctx := context.Background()
	// NewMongoStore also ensures the username unique index
	st, err := store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	defer st.Close(ctx)

	// Create the admin account if it does not exist yet
	accounts := service.NewAccountService(st)
	if err := accounts.BootstrapAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.Fatalf("seeding failed: %v", err) // Log fatal error if bootstrap fails
	}
	logrus.Info("Seeding completed.") // Log successful seeding
}

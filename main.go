package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bizdesk/api"
	"bizdesk/internal/auth"
	"bizdesk/internal/config"
	"bizdesk/internal/database"
	"bizdesk/internal/employees"
	"bizdesk/internal/inventory"
	"bizdesk/internal/sales"
)

func main() {
	// Load environment variables; a missing .env is fine.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	if cfg.Session.Secret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}
	if len(cfg.Users) == 0 {
		log.Fatal("at least one user must be configured")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	authenticator, err := auth.NewAuthenticator(cfg.Users, logger)
	if err != nil {
		logger.Fatal("invalid credential table", zap.Error(err))
	}
	tokens := auth.NewTokenManager(cfg.Session.Secret, cfg.Session.TTL)

	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	api.InitRoutes(r, api.Deps{
		Logger:    logger,
		Auth:      authenticator,
		Tokens:    tokens,
		Inventory: inventory.NewService(inventory.NewGormStorage(db), logger),
		Sales:     sales.NewService(sales.NewGormStorage(db), logger),
		Employees: employees.NewService(employees.NewGormStorage(db), logger),
	})

	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

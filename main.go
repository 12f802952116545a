package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quickbite/configs"
	"quickbite/pkg/logger"
	"quickbite/repository"
	"quickbite/routes"
	"quickbite/services"
)

func main() {
	cfg := configs.LoadConfig()

	logger.Init(cfg.Env)
	defer logger.Sync()

	// Relational store
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		logger.L().Fatal("connect database failed", zap.Error(err))
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		logger.L().Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedRestaurants(db); err != nil {
		logger.L().Fatal("seed restaurants failed", zap.Error(err))
	}

	// Document store (menus/reviews); falls back to the in-memory catalog
	// when no MONGO_URI is configured.
	var catalog repository.CatalogStore
	mongoDB, err := configs.ConnectMongo(cfg)
	if err != nil {
		logger.L().Fatal("connect mongo failed", zap.Error(err))
	}
	if mongoDB != nil {
		catalog = repository.NewMongoCatalog(mongoDB)
	} else {
		logger.L().Warn("MONGO_URI not set — using in-memory catalog")
		catalog = repository.NewMemoryCatalog()
	}

	notifier := services.NewNotifier(cfg.NotifyLog)
	defer notifier.Close()

	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Catalog:  catalog,
		Notifier: notifier,
		Cfg:      cfg,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L().Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

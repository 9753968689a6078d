package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pippali-pos/configs"
	"pippali-pos/pkg/logger"
	"pippali-pos/routes"
	"pippali-pos/ws"
)

func main() {
	cfg := configs.LoadConfig()

	logger.Initialize(cfg.Environment)
	defer logger.Sync()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logger.Log.Fatal("database connect failed", zap.Error(err))
	}
	if err := configs.SetupDatabase(); err != nil {
		logger.Log.Fatal("migration failed", zap.Error(err))
	}
	if err := configs.SeedAdmin(); err != nil {
		logger.Log.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedTables(); err != nil {
		logger.Log.Fatal("seed tables failed", zap.Error(err))
	}

	// Floor events hub
	hub := ws.NewFloorHub()
	go hub.Run()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, cfg, hub)

	logger.Log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ynz20/AppPerruqueriaApi/internal/config"
	dbpkg "github.com/ynz20/AppPerruqueriaApi/internal/db"
	"github.com/ynz20/AppPerruqueriaApi/internal/logger"
	"github.com/ynz20/AppPerruqueriaApi/internal/middleware"
	"github.com/ynz20/AppPerruqueriaApi/internal/routes"
)

func main() {

	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if cfg.SeedOnBoot {
		dbpkg.Seed(db)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.SLog.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Log.Fatal("failed to start server", zap.Error(err))
	}
}

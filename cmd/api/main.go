package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
	"github.com/BruksfildServices01/barbershop-booking/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := routes.RegisterRoutes(r, db, cfg, log); err != nil {
		log.Fatal("failed to register routes", zap.Error(err))
	}

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgroRegistroBR/rural-registry/internal/cache"
	"github.com/AgroRegistroBR/rural-registry/internal/config"
	dbpkg "github.com/AgroRegistroBR/rural-registry/internal/db"
	"github.com/AgroRegistroBR/rural-registry/internal/middleware"
	"github.com/AgroRegistroBR/rural-registry/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var cacheClient cache.Client
	if cfg.RedisURL != "" {
		cacheClient = cache.NewRedisClient(cfg.RedisURL)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cacheClient)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

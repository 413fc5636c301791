package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymstack/gym-manager/internal/config"
	dbpkg "github.com/gymstack/gym-manager/internal/db"
	"github.com/gymstack/gym-manager/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := dbpkg.Seed(db, cfg); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

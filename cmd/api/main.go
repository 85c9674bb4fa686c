package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/barberhub/barberhub-api/internal/config"
	"github.com/barberhub/barberhub-api/internal/db"
	"github.com/barberhub/barberhub-api/internal/middleware"
	"github.com/barberhub/barberhub-api/internal/routes"
)

func main() {
	cfg := config.Load()
	database := db.NewDB(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Local uploads only; with S3 configured the store returns absolute URLs.
	if cfg.S3Bucket == "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	if err := routes.RegisterRoutes(r, database, cfg); err != nil {
		log.Fatalf("failed to wire routes: %v", err)
	}

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

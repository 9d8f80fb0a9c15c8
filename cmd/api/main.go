package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hairloom/salon-booking/internal/config"
	dbpkg "github.com/hairloom/salon-booking/internal/db"
	"github.com/hairloom/salon-booking/internal/mailer"
	"github.com/hairloom/salon-booking/internal/reminder"
	"github.com/hairloom/salon-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	mail := mailer.NewDispatcher(mailer.NewProvider(cfg))
	defer mail.Close()

	reminders := reminder.New(db, mail)
	reminders.Start()
	defer reminders.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, mail)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

package main

import (
	"log"
	"net/http"

	"stayvista_server/internal/config"
	"stayvista_server/internal/gateway"
	"stayvista_server/internal/logger"
	"stayvista_server/internal/middleware"
	"stayvista_server/internal/routes"
	"stayvista_server/internal/storage"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database; the handle is owned here and injected below
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("database startup failed: %v", err)
	}
	store := storage.New(db)

	payments := gateway.NewStripeGateway(cfg.StripeSecretKey)
	mailer := gateway.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.TransporterEmail, cfg.TransporterPass)

	// Setup Gin router
	r := routes.SetupRouter(store, payments, mailer, cfg.Production)

	// Wrap with CORS
	handler := middleware.EnableCORS(cfg.AllowedOrigins, r)

	log.Printf("🚀 StayVista server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"shareit/internal/config"
	"shareit/internal/handlers"
	"shareit/internal/repositories"
	"shareit/internal/services"
	"shareit/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := repositories.OpenDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Printf("Connected to %s database", cfg.DatabaseDriver)

	// --- Booking events ---
	var publisher services.BookingEventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		if cfg.ConsumeEvents {
			if err := mqClient.ConsumeBookingEvents(rabbitmq.LogBookingEvent); err != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", err)
			}
		}
	} else {
		log.Println("RABBITMQ_URL is empty, booking events are disabled")
	}

	// --- Gateway trust ---
	var authService *services.AuthService
	if cfg.GatewaySecret != "" {
		authService = services.NewAuthService(cfg.GatewaySecret, cfg.GatewayTokenTTL)
	} else {
		log.Println("GATEWAY_SECRET is empty, calls are accepted without a gateway token")
	}

	app := handlers.NewApp(handlers.AppConfig{
		DB:        db,
		Publisher: publisher,
		Auth:      authService,
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server gracefully stopped")
}
